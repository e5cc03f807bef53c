package source

import "fmt"

// NotFoundError reports that no eligible record survived a search session.
type NotFoundError struct {
	Term string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no relevant result for %q", e.Term)
}

// EmptyCollectionError reports a collection that resolved to zero fetchable members.
type EmptyCollectionError struct {
	Locator string
}

func (e *EmptyCollectionError) Error() string {
	return fmt.Sprintf("collection %q has no resolvable members", e.Locator)
}

// UnknownFormatError reports an unsupported output encoding request.
type UnknownFormatError struct {
	Value string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown format %q (expected mp3 or mp4)", e.Value)
}
