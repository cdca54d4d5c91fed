package ruledsl

import (
	"strings"
	"testing"

	"github.com/brunellolabs/revta/tm"
)

const bachSource = `
# accepts (ABC)^0, (ABC)^1, (ABC)^2, ...
ExpectA A -> - R ExpectB
ExpectA ⊣ -> - H Accept
ExpectB B -> - R ExpectC
ExpectC C -> - R ExpectA
`

func TestParseRoundTripsIntoAWorkingMachine(t *testing.T) {
	transitions, err := Parse(strings.NewReader(bachSource))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(transitions) != 4 {
		t.Fatalf("parsed %d transitions, want 4", len(transitions))
	}
	m, err := tm.NewMachine("ExpectA", transitions)
	if err != nil {
		t.Fatalf("NewMachine from parsed transitions: %v", err)
	}
	if !m.Parse([]string{"A", "B", "C"}) {
		t.Error("expected ABC to parse as accepted")
	}
	if !m.Parse(nil) {
		t.Error("expected the empty string to parse as accepted")
	}
	if m.Parse([]string{"A", "B"}) {
		t.Error("expected AB to be rejected (incomplete group)")
	}
	if m.Parse([]string{"A", "C", "B"}) {
		t.Error("expected ACB to be rejected (wrong order)")
	}
}

func TestParseSkipsBlankAndCommentLines(t *testing.T) {
	src := "\n  \n# a comment\nq0 a -> - H Accept\n\n"
	transitions, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(transitions) != 1 {
		t.Fatalf("parsed %d transitions, want 1", len(transitions))
	}
}

func TestParseRejectsMalformedLine(t *testing.T) {
	cases := []string{
		"q0 a -> - H",            // missing `next`
		"q0 a => - H Accept",     // wrong arrow
		"q0 a -> - X Accept",     // unknown move
		"q0 a -> b c d e f g -> h Accept",
	}
	for _, src := range cases {
		if _, err := Parse(strings.NewReader(src)); err == nil {
			t.Errorf("Parse(%q): expected an error, got none", src)
		}
	}
}

func TestParseReportsLineNumberOnError(t *testing.T) {
	src := "q0 a -> - H Accept\nq1 b -> - BOGUS Accept\n"
	_, err := Parse(strings.NewReader(src))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not mention line 2", err)
	}
}

func TestParseMarkersAndReservedNextIdents(t *testing.T) {
	src := "q0 ⊢ -> - R q1\nq1 ⊣ -> - H Reject\n"
	transitions, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(transitions) != 2 {
		t.Fatalf("parsed %d transitions, want 2", len(transitions))
	}
	if !transitions[0].Read.IsLeftMarker() {
		t.Error("expected the first rule to read the left marker")
	}
	if !transitions[1].Read.IsRightMarker() {
		t.Error("expected the second rule to read the right marker")
	}
	if transitions[1].ChangeState == nil || !transitions[1].ChangeState.IsReject() {
		t.Error("expected the second rule's next state to be Reject")
	}
}
