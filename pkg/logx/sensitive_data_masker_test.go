package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dealflow/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Buyer email and phone",
			input:  []byte(`{"name":"Jane","email":"jane@example.com","phone":"+15550001"}`),
			output: []byte(`{"name":"Jane","email":"[MASKED]","phone":"[MASKED]"}`),
		},
		{
			name:   "Deal contact info",
			input:  []byte(`{"title":"Must sell","contact_info": "call 555-0101"}`),
			output: []byte(`{"title":"Must sell","contact_info": "[MASKED]"}`),
		},
		{
			name:   "Match listing with buyer contacts",
			input:  []byte(`{"match_score":80,"buyer_email":"a@b.c","buyer_phone":"123"}`),
			output: []byte(`{"match_score":80,"buyer_email":"[MASKED]","buyer_phone":"[MASKED]"}`),
		},
		{
			name:   "Gemini api key header",
			input:  []byte("POST /v1beta/models HTTP/1.1\r\nX-Goog-Api-Key: secret\r\n"),
			output: []byte("POST /v1beta/models HTTP/1.1\r\nX-Goog-Api-Key: [MASKED]\r\n"),
		},
		{
			name:   "Nothing to mask",
			input:  []byte(`{"category":"real-estate","price":"60000"}`),
			output: []byte(`{"category":"real-estate","price":"60000"}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
