package html

import "testing"

func TestStripHTML_EmptyString(t *testing.T) {
	if got := StripHTML(""); got != "" {
		t.Errorf("StripHTML(\"\") = %q, want empty", got)
	}
}

func TestStripHTML_PlainTextUnchanged(t *testing.T) {
	if got := StripHTML("flood warning issued"); got != "flood warning issued" {
		t.Errorf("StripHTML = %q", got)
	}
}

func TestStripHTML_RemovesTags(t *testing.T) {
	input := "<p>Major <b>disaster</b> declared</p>"

	got := StripHTML(input)

	if got != "Major disaster declared" {
		t.Errorf("StripHTML = %q, want 'Major disaster declared'", got)
	}
}

func TestStripHTML_DropsScriptAndStyleContent(t *testing.T) {
	input := `<div>Shelter open<script>alert("x")</script><style>p{}</style> downtown</div>`

	got := StripHTML(input)

	if got != "Shelter open downtown" {
		t.Errorf("StripHTML = %q, want 'Shelter open downtown'", got)
	}
}

func TestStripHTML_DecodesEntities(t *testing.T) {
	got := StripHTML("Search &amp; rescue &#8230;")

	if got != "Search & rescue …" {
		t.Errorf("StripHTML = %q", got)
	}
}

func TestStripHTML_CollapsesWhitespace(t *testing.T) {
	got := StripHTML("<p>a</p>\n\n   <p>b</p>")

	if got != "a b" {
		t.Errorf("StripHTML = %q, want 'a b'", got)
	}
}

func TestStripHTML_MalformedMarkupNeverLeaksTags(t *testing.T) {
	got := StripHTML("<p>update <b>bold")

	if got != "update bold" {
		t.Errorf("StripHTML = %q, want 'update bold'", got)
	}
}
