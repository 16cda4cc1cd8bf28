package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vidharvest/vidharvest/log"
	"github.com/vidharvest/vidharvest/util"
	"github.com/vidharvest/vidharvest/video"
)

// Embedded reads the JSON state object that channel pages assign in a script block
// and walks it for video renderer nodes.
type Embedded struct {
	marker      string
	assignments []*regexp.Regexp
	renderers   []string
	maxDepth    int
}

// NewEmbedded builds the strategy for the state object named marker.
func NewEmbedded(marker string, renderers []string, maxDepth int) *Embedded {
	name := regexp.QuoteMeta(marker)
	return &Embedded{
		marker: marker,
		assignments: []*regexp.Regexp{
			regexp.MustCompile(`var\s+` + name + `\s*=\s*\{`),
			regexp.MustCompile(`window\["` + name + `"\]\s*=\s*\{`),
			regexp.MustCompile(name + `\s*=\s*\{`),
		},
		renderers: renderers,
		maxDepth:  maxDepth,
	}
}

func (e *Embedded) Name() string { return NameEmbedded }

// Extract tries every script block containing the marker and every assignment form
// within it, and stops at the first payload that yields videos. Payloads that fail to
// parse are skipped.
func (e *Embedded) Extract(page *Page) mo.Option[[]video.Video] {
	for i, script := range page.Scripts() {
		if !strings.Contains(script, e.marker) {
			continue
		}

		for _, assignment := range e.assignments {
			payload, ok := e.payload(script, assignment)
			if !ok {
				continue
			}

			videos, err := e.walk(payload)
			if err != nil {
				log.Debugf("script %d: %v", i, err)
				continue
			}
			if len(videos) > 0 {
				return mo.Some(videos)
			}
		}
	}

	return mo.None[[]video.Video]()
}

// payload returns the JSON object assigned by the first match of assignment in script.
// The object is cut at its balancing brace; when the braces never balance the text up
// to the first "};" is used instead.
func (e *Embedded) payload(script string, assignment *regexp.Regexp) ([]byte, bool) {
	loc := assignment.FindStringIndex(script)
	if loc == nil {
		return nil, false
	}

	rest := script[loc[1]-1:]
	if object, ok := balancedObject(rest); ok {
		return []byte(object), true
	}

	if end := strings.Index(rest, "};"); end >= 0 {
		return []byte(rest[:end+1]), true
	}
	return nil, false
}

// balancedObject returns the prefix of s, which starts with '{', up to its matching '}'.
func balancedObject(s string) (string, bool) {
	var (
		depth    int
		inString bool
		escaped  bool
	)

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}

	return "", false
}

type frame struct {
	data  []byte
	kind  jsonparser.ValueType
	depth int
}

type member struct {
	key string
	frame
}

// walk visits payload in pre-order with an explicit stack and collects a video for
// every object holding a renderer key.
func (e *Embedded) walk(payload []byte) ([]video.Video, error) {
	if !json.Valid(payload) {
		return nil, fmt.Errorf("invalid embedded JSON (%d bytes)", len(payload))
	}

	root, kind, _, err := jsonparser.Get(payload)
	if err != nil {
		return nil, fmt.Errorf("read embedded JSON: %w", err)
	}

	var (
		videos []video.Video
		stack  util.Stack[frame]
	)
	stack.Push(frame{data: root, kind: kind})

	for stack.Len() > 0 {
		node := stack.Pop()

		members, err := children(node)
		if err != nil {
			return nil, err
		}

		if node.kind == jsonparser.Object {
			if v, ok := e.rendered(members); ok {
				videos = append(videos, v)
			}
		}

		if node.depth >= e.maxDepth {
			continue
		}

		// reversed so that the first child is popped first
		for i := len(members) - 1; i >= 0; i-- {
			if k := members[i].kind; k == jsonparser.Object || k == jsonparser.Array {
				stack.Push(members[i].frame)
			}
		}
	}

	return videos, nil
}

// children lists the direct members of an object or array node, in document order.
func children(node frame) ([]member, error) {
	var members []member

	switch node.kind {
	case jsonparser.Object:
		err := jsonparser.ObjectEach(node.data, func(k, v []byte, t jsonparser.ValueType, _ int) error {
			members = append(members, member{key: string(k), frame: frame{data: v, kind: t, depth: node.depth + 1}})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk object: %w", err)
		}
	case jsonparser.Array:
		var walkErr error
		_, err := jsonparser.ArrayEach(node.data, func(v []byte, t jsonparser.ValueType, _ int, err error) {
			if err != nil {
				walkErr = err
				return
			}
			members = append(members, member{frame: frame{data: v, kind: t, depth: node.depth + 1}})
		})
		if err == nil {
			err = walkErr
		}
		if err != nil {
			return nil, fmt.Errorf("walk array: %w", err)
		}
	}

	return members, nil
}

// rendered returns the video described by the first configured renderer key among
// members that holds an object with both an identifier and a title.
func (e *Embedded) rendered(members []member) (video.Video, bool) {
	for _, name := range e.renderers {
		m, ok := lo.Find(members, func(m member) bool {
			return m.key == name
		})
		if !ok {
			continue
		}
		if m.kind != jsonparser.Object {
			continue
		}

		id, _ := jsonparser.GetString(m.data, "videoId")
		title := titleOf(m.data).String()
		if title == "" || !video.ValidID(id) {
			continue
		}
		return video.New(id, title), true
	}

	return video.Video{}, false
}

// titleOf reads the "title" member of a renderer in whichever shape it comes.
// When an object carries "runs" they take precedence over "simpleText".
func titleOf(renderer []byte) Title {
	value, kind, _, err := jsonparser.Get(renderer, "title")
	if err != nil {
		return Title{}
	}

	switch kind {
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return Title{}
		}
		return Plain(s)
	case jsonparser.Object:
		if runs, kind, _, err := jsonparser.Get(value, "runs"); err == nil {
			if kind != jsonparser.Array {
				return Title{}
			}
			var segments []string
			_, _ = jsonparser.ArrayEach(runs, func(run []byte, _ jsonparser.ValueType, _ int, _ error) {
				text, _ := jsonparser.GetString(run, "text")
				segments = append(segments, text)
			})
			return Runs(segments...)
		}
		if s, err := jsonparser.GetString(value, "simpleText"); err == nil {
			return SimpleText(s)
		}
	}

	return Title{}
}
