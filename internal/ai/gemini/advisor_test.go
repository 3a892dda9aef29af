package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/ayanchyaziz123/career-AI/internal/ai"
	"github.com/ayanchyaziz123/career-AI/internal/career"
	"github.com/ayanchyaziz123/career-AI/internal/profile"
)

type stubGenerator struct {
	response string
	err      error
	failures int // number of leading calls that return err
	prompts  []string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.failures > 0 {
		s.failures--
		return "", s.err
	}
	return s.response, nil
}

func testRequest() *ai.Request {
	return &ai.Request{
		Profile: profile.Profile{
			Skills:     []string{"Python", "SQL"},
			Experience: "2-5",
			Education:  "bachelors",
			WorkStyle:  "remote",
		},
		Match: &career.Match{
			ID:     "data-engineer",
			Title:  "Data Engineer",
			Salary: "$100k - $160k",
			Growth: "High",
			Skills: []career.Skill{
				{Name: "Python", Level: 6, Required: 9, Category: "Technical"},
			},
		},
		Readiness:    62,
		PriorityGaps: []string{"Apache Spark", "Data Warehousing"},
	}
}

func TestAdvisePopulatesPrompt(t *testing.T) {
	gen := &stubGenerator{response: "  Focus on Spark first.  "}
	advisor := NewAdvisor(gen, zap.NewNop(), 0, 0)

	guidance, err := advisor.Advise(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("advise: %v", err)
	}

	if guidance.Text != "Focus on Spark first." {
		t.Fatalf("expected trimmed guidance, got %q", guidance.Text)
	}
	if guidance.Raw != gen.response {
		t.Fatalf("expected raw response preserved")
	}

	if len(gen.prompts) != 1 {
		t.Fatalf("expected a single generation call, got %d", len(gen.prompts))
	}
	prompt := gen.prompts[0]
	for _, want := range []string{
		`"Python"`,
		"Data Engineer",
		"$100k - $160k",
		"62",
		"Apache Spark, Data Warehousing",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if strings.Contains(prompt, "{{") {
		t.Fatalf("prompt has unreplaced placeholders:\n%s", prompt)
	}
}

func TestAdviseWithoutGaps(t *testing.T) {
	gen := &stubGenerator{response: "ok"}
	advisor := NewAdvisor(gen, zap.NewNop(), 0, 0)

	req := testRequest()
	req.PriorityGaps = nil

	if _, err := advisor.Advise(context.Background(), req); err != nil {
		t.Fatalf("advise: %v", err)
	}
	if !strings.Contains(gen.prompts[0], "none") {
		t.Fatalf("expected empty gaps to render as none")
	}
}

func TestAdviseRequiresMatch(t *testing.T) {
	advisor := NewAdvisor(&stubGenerator{}, zap.NewNop(), 0, 0)

	if _, err := advisor.Advise(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil request")
	}

	req := testRequest()
	req.Match = nil
	if _, err := advisor.Advise(context.Background(), req); err == nil {
		t.Fatalf("expected error for missing match")
	}
}

func TestAdviseStopsAfterMaxRetries(t *testing.T) {
	gen := &stubGenerator{err: errors.New("rate limited"), failures: 1}
	advisor := NewAdvisor(gen, zap.NewNop(), 0, 0)

	if _, err := advisor.Advise(context.Background(), testRequest()); err == nil {
		t.Fatalf("expected the generation error to propagate")
	}
	if len(gen.prompts) != 1 {
		t.Fatalf("expected no retries with maxRetries=0, got %d calls", len(gen.prompts))
	}
}

func TestAdviseRetryAbortsOnCancelledContext(t *testing.T) {
	gen := &stubGenerator{err: errors.New("flaky"), failures: 1, response: "never reached"}
	advisor := NewAdvisor(gen, zap.NewNop(), 3, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := advisor.Advise(ctx, testRequest()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled from the backoff wait, got %v", err)
	}
	if len(gen.prompts) != 1 {
		t.Fatalf("expected the wait to abort before a second attempt, got %d calls", len(gen.prompts))
	}
}
