package extract

import "regexp"

// hrefID finds the identifier following a watch, short-link or embed marker inside an href.
var hrefID = regexp.MustCompile(`(?:v=|youtu\.be/|/embed/)(?P<id>[a-zA-Z0-9_-]{11})`)

// textID is the raw-text variant; it requires the full "watch?v=" marker because
// plain "v=" is far too common in scripts and query strings.
var textID = regexp.MustCompile(`(?:watch\?v=|youtu\.be/|/embed/)([a-zA-Z0-9_-]{11})`)
