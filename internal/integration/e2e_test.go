package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"GoNLP/internal/config"
	"GoNLP/internal/server"
	"GoNLP/internal/testutil"
	"GoNLP/internal/value"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.DefaultConfig()
	h := server.NewHandler(testutil.NewRegistry(t), cfg, "e2e", testutil.Logger(t))
	ts := httptest.NewServer(h.Routes())
	t.Cleanup(ts.Close)
	return ts
}

type invokeResponse struct {
	RequestID string     `json:"request_id"`
	Module    string     `json:"module"`
	Output    value.Wire `json:"output"`
}

func invoke(t *testing.T, ts *httptest.Server, module string, input value.Value) invokeResponse {
	t.Helper()
	body, err := json.Marshal(map[string]value.Wire{"input": {Value: input}})
	if err != nil {
		t.Fatal(err)
	}

	resp, err := http.Post(ts.URL+"/modules/"+module+"/invoke", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("invoke %s: status %d: %s", module, resp.StatusCode, data)
	}

	var out invokeResponse
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestE2E_SentimentCycle(t *testing.T) {
	ts := newTestServer(t)

	out := invoke(t, ts, "AnalyzeSentiment", testutil.TextInput("I love this, it is excellent but the ending was bad"))

	if out.Module != "nlp.sentiment.AnalyzeSentiment" {
		t.Errorf("module = %q", out.Module)
	}
	if out.RequestID == "" {
		t.Error("missing request id")
	}

	p, err := value.AsProduct(out.Output.Value)
	if err != nil {
		t.Fatal(err)
	}
	score, err := p.FloatField("score")
	if err != nil {
		t.Fatal(err)
	}
	label, err := p.StringField("label")
	if err != nil {
		t.Fatal(err)
	}

	// 11 tokens: love, excellent positive; bad negative.
	if want := 1.0 / 11.0; score < want-1e-9 || score > want+1e-9 {
		t.Errorf("score = %f, want %f", score, want)
	}
	if label != "positive" {
		t.Errorf("label = %q, want positive", label)
	}
}

func TestE2E_LanguageCycle(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		text string
		want string
	}{
		{"the cat is on the mat and it was happy", "english"},
		{"le chat est dans la maison mais il dort", "french"},
		{"der Hund ist nicht groß aber die Katze", "german"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			out := invoke(t, ts, "nlp.sentiment.DetectLanguage", testutil.TextInput(tt.text))
			p, err := value.AsProduct(out.Output.Value)
			if err != nil {
				t.Fatal(err)
			}
			lang, _ := p.StringField("language")
			if lang != tt.want {
				t.Errorf("language = %q, want %q", lang, tt.want)
			}
		})
	}
}

func TestE2E_KeywordsCycle(t *testing.T) {
	ts := newTestServer(t)

	out := invoke(t, ts, "ExtractKeywords", testutil.KeywordsInput("Go is great. Go is fast, and Go is fun to write!", 3))

	want := value.NewProduct(map[string]value.Value{
		"keywords": value.Strings("great", "fast", "fun"),
	})
	if diff := testutil.ValueDiff(want, out.Output.Value); diff != "" {
		t.Errorf("keywords mismatch (-want +got):\n%s", diff)
	}
}

func TestE2E_ShapeErrorResponse(t *testing.T) {
	ts := newTestServer(t)

	body := `{"input":{"tag":"Product","value":{"text":{"tag":"Int","value":3}}}}`
	resp, err := http.Post(ts.URL+"/modules/AnalyzeSentiment/invoke", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}

	var out struct {
		Error struct {
			Kind     string `json:"kind"`
			Path     string `json:"path"`
			Expected string `json:"expected"`
			Actual   string `json:"actual"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Error.Path != "$.text" || out.Error.Expected != "String" || out.Error.Actual != "Int" {
		t.Errorf("unexpected error body: %+v", out.Error)
	}
}

func TestE2E_ModuleCatalog(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/modules/ExtractKeywords")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var info struct {
		Name       string     `json:"name"`
		InputType  value.Type `json:"input_type"`
		OutputType value.Type `json:"output_type"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		t.Fatal(err)
	}

	in := value.ProductType(map[string]value.Type{"text": value.StringType(), "maxKeywords": value.IntType()})
	if !info.InputType.Equal(in) {
		t.Errorf("input type = %s, want %s", info.InputType, in)
	}
	if info.OutputType.String() != "{keywords: List<String>}" {
		t.Errorf("output type = %s", info.OutputType)
	}
}
