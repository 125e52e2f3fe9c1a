package advisor_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"dealflow/internal/domain/entity"
	"dealflow/internal/domain/value"
	"dealflow/internal/infrastructure/advisor"
)

type fakeGenerator struct {
	text   string
	err    error
	model  string
	prompt string
}

func (f *fakeGenerator) GenerateContent(
	_ context.Context,
	model string,
	contents []*genai.Content,
	_ *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	f.model = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}

	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: f.text}}},
		}},
	}, nil
}

func testDeal() entity.Deal {
	mv := decimal.NewFromInt(100000)
	return entity.Deal{
		Title:       "Duplex",
		Description: strings.Repeat("a", 600),
		Price:       decimal.NewFromInt(60000),
		MarketValue: &mv,
		Category:    value.CategoryRealEstate,
	}
}

func TestGemini_Adjust(t *testing.T) {
	testCases := []struct {
		name    string
		text    string
		genErr  error
		want    int
		wantErr bool
	}{
		{name: "positive", text: "7", want: 7},
		{name: "explicit sign", text: " +4\n", want: 4},
		{name: "negative", text: "-3", want: -3},
		{name: "trailing text", text: "8 - good discount", want: 8},
		{name: "clamped high", text: "42", want: 10},
		{name: "clamped low", text: "-15", want: -10},
		{name: "not a number", text: "great deal", wantErr: true},
		{name: "empty", text: "", wantErr: true},
		{name: "api error", genErr: errors.New("quota"), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)
			gen := &fakeGenerator{text: tc.text, err: tc.genErr}
			g := advisor.NewWithGenerator(gen, "gemini-test")

			adj, err := g.Adjust(context.Background(), testDeal())
			if tc.wantErr {
				rq.Error(err)
				rq.Zero(adj)
				return
			}

			rq.NoError(err)
			rq.Equal(tc.want, adj)
			rq.Equal("gemini-test", gen.model)
		})
	}
}

func TestGemini_DefaultModel(t *testing.T) {
	rq := require.New(t)

	g := advisor.NewWithGenerator(&fakeGenerator{}, "  ")
	rq.NotEmpty(g.Model())
}

func TestPrompt(t *testing.T) {
	rq := require.New(t)

	prompt := advisor.Prompt(testDeal())
	rq.Contains(prompt, "Title: Duplex\n")
	rq.Contains(prompt, "Price: $60000\n")
	rq.Contains(prompt, "Market Value: $100000\n")
	rq.Contains(prompt, "Category: real-estate\n")
	rq.Contains(prompt, "Description: "+strings.Repeat("a", 500)+"\n")
	rq.NotContains(prompt, strings.Repeat("a", 501))
	rq.True(strings.HasSuffix(prompt, "negative for bad/risky deals."))

	bare := testDeal()
	bare.MarketValue = nil
	bare.Description = ""
	prompt = advisor.Prompt(bare)
	rq.Contains(prompt, "Market Value: $unknown\n")
	rq.Contains(prompt, "Description: N/A\n")
}

func TestInstrumented(t *testing.T) {
	rq := require.New(t)

	a := advisor.NewInstrumented(advisor.NewWithGenerator(&fakeGenerator{text: "5"}, ""))
	adj, err := a.Adjust(context.Background(), testDeal())
	rq.NoError(err)
	rq.Equal(5, adj)

	a = advisor.NewInstrumented(advisor.NewWithGenerator(&fakeGenerator{err: errors.New("down")}, ""))
	adj, err = a.Adjust(context.Background(), testDeal())
	rq.Error(err)
	rq.Zero(adj)
}
