package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/dshills/sheetdiff/internal/changes"
)

type filterParams struct {
	Filter string `json:"filter"`
}

type fileParams struct {
	File string `json:"file" binding:"required"`
}

type sheetParams struct {
	File  string `json:"file" binding:"required"`
	Sheet string `json:"sheet" binding:"required"`
}

func (p sheetParams) key() changes.SheetKey {
	return changes.SheetKey{File: p.File, Sheet: p.Sheet}
}

var errBadRequest = errors.New("bad request")

func (s *server) initRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/view", s.get(func() (any, error) {
		return s.session.View(), nil
	}))

	api.GET("/summary", s.get(func() (any, error) {
		return s.session.Summary(), nil
	}))

	api.GET("/records", s.get(func() (any, error) {
		return s.session.Records(), nil
	}))

	api.PUT("/filter", postP(s, func(p *filterParams) (any, error) {
		f, err := changes.ParseFilter(p.Filter)
		if err != nil {
			return nil, errors.Wrap(errBadRequest, err.Error())
		}
		s.session.SetFilter(f)
		return s.session.View(), nil
	}))

	api.POST("/files/toggle", postP(s, func(p *fileParams) (any, error) {
		s.session.ToggleFile(p.File)
		return s.session.View(), nil
	}))

	api.POST("/sheets/toggle", postP(s, func(p *sheetParams) (any, error) {
		s.session.ToggleSheet(p.key())
		return s.session.View(), nil
	}))

	api.POST("/sheets/more", postP(s, func(p *sheetParams) (any, error) {
		s.session.ShowMore(p.key())
		return s.session.View(), nil
	}))

	api.POST("/changes", s.loadChanges)
}

func (s *server) loadChanges(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		s.sendError(c, errors.Wrap(errBadRequest, err.Error()))
		return
	}
	if !json.Valid(data) {
		s.sendError(c, errors.Wrap(errBadRequest, "body is not valid JSON"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Load(json.RawMessage(data))
	c.JSON(http.StatusOK, s.session.View())
}

func (s *server) sendError(c *gin.Context, err error) {
	if errors.Is(err, errBadRequest) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.logger.Error("request failed", "path", c.Request.URL.Path, "error", err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (s *server) get(f func() (any, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		result, err := f()
		if err != nil {
			s.sendError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func postP[P any](s *server, f func(*P) (any, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params P
		if err := c.ShouldBindJSON(&params); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		result, err := f(&params)
		if err != nil {
			s.sendError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
