package overlay

import (
	"fmt"
	"strings"
)

// Compile serializes primitives into an ffmpeg filter chain, one stage per
// primitive joined in paint order. Timestamps are rebased first so the enable
// expressions see elapsed time from the clip start.
func Compile(primitives []Primitive) string {
	stages := make([]string, 0, len(primitives)+1)
	stages = append(stages, "setpts=PTS-STARTPTS")
	for _, prim := range primitives {
		switch p := prim.(type) {
		case Box:
			stages = append(stages, boxStage(p))
		case Text:
			stages = append(stages, textStage(p))
		}
	}
	return strings.Join(stages, ",")
}

func boxStage(b Box) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "drawbox=x=%d:y=%d:w=%d:h=%d:color=%s:t=fill", b.X, b.Y, b.Width, b.Height, b.Color)
	if b.Enable != "" {
		fmt.Fprintf(&sb, ":enable='%s'", b.Enable)
	}
	return sb.String()
}

func textStage(t Text) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "drawtext=fontfile='%s':text='%s':fontcolor=%s:fontsize=%d:x=%s:y=%s",
		t.FontFile, escapeText(t.Content), t.Color, t.FontSize, t.X, t.Y)
	if t.Enable != "" {
		fmt.Fprintf(&sb, ":enable='%s'", t.Enable)
	}
	return sb.String()
}

// escapeText handles drawtext special characters beyond what the record
// sanitizer already covered. Quotes would terminate the filter value, so they
// are dropped the same way the sanitizer drops them from team names.
func escapeText(s string) string {
	return strings.NewReplacer(
		"'", "",
		"%", `\%`,
		",", `\,`,
	).Replace(s)
}
