package method

type Method uint8

const (
	Unknown Method = iota
	GET
	POST
	HEAD
	PUT
	DELETE
	OPTIONS
	TRACE
	CONNECT
	PATCH
)

// List contains all the supported HTTP methods. They are sorted by their integer value,
// however Unknown method is not included.
var List = []Method{GET, POST, HEAD, PUT, DELETE, OPTIONS, TRACE, CONNECT, PATCH}

func (m Method) String() string {
	lut := [...]string{
		GET:     "GET",
		POST:    "POST",
		HEAD:    "HEAD",
		PUT:     "PUT",
		DELETE:  "DELETE",
		OPTIONS: "OPTIONS",
		TRACE:   "TRACE",
		CONNECT: "CONNECT",
		PATCH:   "PATCH",
	}
	if int(m) >= len(lut) {
		return ""
	}

	return lut[m]
}
