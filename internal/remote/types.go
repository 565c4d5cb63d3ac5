package remote

// Commit is one entry of the commit history.
type Commit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	URL     string `json:"url"`
}

// CommitFile is a file touched by a commit. Counts arrive as strings.
type CommitFile struct {
	Filename  string `json:"filename"`
	Status    string `json:"status"`
	Additions string `json:"additions"`
	Deletions string `json:"deletions"`
}

// CommitDetails is a commit with its files and parents.
type CommitDetails struct {
	SHA     string       `json:"sha"`
	Message string       `json:"message"`
	Author  string       `json:"author"`
	Date    string       `json:"date"`
	Files   []CommitFile `json:"files"`
	Parents []string     `json:"parents"`
}

// PullRequest is an approval request.
type PullRequest struct {
	Number    int    `json:"number"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	User      string `json:"user"`
	State     string `json:"state"`
	CreatedAt string `json:"created_at"`
	HTMLURL   string `json:"html_url"`
}

// Collaborator is a user who can be asked to approve.
type Collaborator struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// Decision is the backend's answer to an approve or reject call.
type Decision struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// UploadRequest describes a workbook upload. Files are local paths.
type UploadRequest struct {
	Files         []string
	CommitMessage string
	Approvers     []string
}
