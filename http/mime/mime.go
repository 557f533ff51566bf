package mime

type MIME = string

const (
	TextPlain MIME = "text/plain"
	HTML      MIME = "text/html"
	JSON      MIME = "application/json"
)
