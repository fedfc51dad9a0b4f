package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap/zaptest"

	"prosong/config"
	"prosong/convert"
	"prosong/prodoc"
	"prosong/song"
)

const sampleText = `# Song Title: Amazing Grace

[Verse 1]
Amazing grace how sweet the sound
That saved a wretch like me

[Chorus]
How sweet the sound
That saved a wretch like me
`

func testApp(t *testing.T, cfg *config.Config) *fiberApp {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &fiberApp{App: New(cfg, zaptest.NewLogger(t))}
}

type fiberApp struct {
	*fiber.App
}

func (a *fiberApp) request(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := a.Test(req, 5000)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func multipartBody(t *testing.T, files map[string][2]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for field, nameAndContent := range files {
		part, err := w.CreateFormFile(field, nameAndContent[0])
		if err != nil {
			t.Fatalf("creating form file: %v", err)
		}
		if _, err := part.Write([]byte(nameAndContent[1])); err != nil {
			t.Fatalf("writing form file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return out
}

func TestInfo(t *testing.T) {
	a := testApp(t, nil)

	resp := a.request(t, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET / status = %d, want 200", resp.StatusCode)
	}
	body := decodeJSON(t, resp)
	if body["status"] != "ok" {
		t.Errorf("status = %v, want ok", body["status"])
	}
}

func TestHealth(t *testing.T) {
	t.Run("no template configured", func(t *testing.T) {
		a := testApp(t, nil)
		body := decodeJSON(t, a.request(t, httptest.NewRequest(http.MethodGet, "/health", nil)))
		if body["status"] != "healthy" || body["template_configured"] != false {
			t.Errorf("health = %v, want healthy without template", body)
		}
	})

	t.Run("missing template", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Document.TemplatePath = filepath.Join(t.TempDir(), "nope.pro")
		a := testApp(t, cfg)
		body := decodeJSON(t, a.request(t, httptest.NewRequest(http.MethodGet, "/health", nil)))
		if body["status"] != "degraded" {
			t.Errorf("health status = %v, want degraded", body["status"])
		}
	})
}

func TestParse(t *testing.T) {
	a := testApp(t, nil)

	body, contentType := multipartBody(t, map[string][2]string{"file": {"song.txt", sampleText}})
	req := httptest.NewRequest(http.MethodPost, "/parse", body)
	req.Header.Set("Content-Type", contentType)

	resp := a.request(t, req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST /parse status = %d, want 200", resp.StatusCode)
	}
	got := decodeJSON(t, resp)
	if got["title"] != "Amazing Grace" {
		t.Errorf("title = %v, want Amazing Grace", got["title"])
	}
	stats, ok := got["statistics"].(map[string]any)
	if !ok || stats["total_slides"] != float64(2) || stats["section_count"] != float64(2) {
		t.Errorf("statistics = %v, want 2 sections with 2 slides total", got["statistics"])
	}
}

func TestParse_WrongExtension(t *testing.T) {
	a := testApp(t, nil)

	body, contentType := multipartBody(t, map[string][2]string{"file": {"song.doc", sampleText}})
	req := httptest.NewRequest(http.MethodPost, "/parse", body)
	req.Header.Set("Content-Type", contentType)

	if resp := a.request(t, req); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("POST /parse status = %d, want 400", resp.StatusCode)
	}
}

func TestParse_NoFile(t *testing.T) {
	a := testApp(t, nil)

	if resp := a.request(t, httptest.NewRequest(http.MethodPost, "/parse", nil)); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("POST /parse status = %d, want 400", resp.StatusCode)
	}
}

func TestConvert_Scratch(t *testing.T) {
	a := testApp(t, nil)

	body, contentType := multipartBody(t, map[string][2]string{"file": {"song.txt", sampleText}})
	req := httptest.NewRequest(http.MethodPost, "/convert", body)
	req.Header.Set("Content-Type", contentType)

	resp := a.request(t, req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST /convert status = %d, want 200", resp.StatusCode)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "Amazing_Grace.pro") {
		t.Errorf("Content-Disposition = %q, want derived file name", cd)
	}

	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response: %v", err)
	}
	p, err := prodoc.Unmarshal(out)
	if err != nil {
		t.Fatalf("response is not a valid document: %v", err)
	}
	if p.Name != "Amazing Grace" || len(p.Cues) != 2 {
		t.Errorf("document = %q with %d cues, want Amazing Grace with 2", p.Name, len(p.Cues))
	}
}

func TestConvert_WithUploadedTemplate(t *testing.T) {
	a := testApp(t, nil)

	donor, err := convert.NewScratch().Generate(context.Background(), song.Parse(sampleText))
	if err != nil {
		t.Fatalf("building template: %v", err)
	}

	body, contentType := multipartBody(t, map[string][2]string{
		"file":     {"song.txt", sampleText},
		"template": {"base.pro", string(donor.Marshal())},
	})
	req := httptest.NewRequest(http.MethodPost, "/convert", body)
	req.Header.Set("Content-Type", contentType)

	resp := a.request(t, req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST /convert status = %d, want 200", resp.StatusCode)
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	if _, err := prodoc.Unmarshal(out); err != nil {
		t.Errorf("response is not a valid document: %v", err)
	}
}

func TestConvert_BadTemplate(t *testing.T) {
	a := testApp(t, nil)

	body, contentType := multipartBody(t, map[string][2]string{
		"file":     {"song.txt", sampleText},
		"template": {"base.pro", "this is not a document"},
	})
	req := httptest.NewRequest(http.MethodPost, "/convert", body)
	req.Header.Set("Content-Type", contentType)

	if resp := a.request(t, req); resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("POST /convert status = %d, want 422", resp.StatusCode)
	}
}

func TestConvert_TemplateWrongExtension(t *testing.T) {
	a := testApp(t, nil)

	body, contentType := multipartBody(t, map[string][2]string{
		"file":     {"song.txt", sampleText},
		"template": {"base.txt", "whatever"},
	})
	req := httptest.NewRequest(http.MethodPost, "/convert", body)
	req.Header.Set("Content-Type", contentType)

	if resp := a.request(t, req); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("POST /convert status = %d, want 400", resp.StatusCode)
	}
}

func TestConvert_EmptyInput(t *testing.T) {
	a := testApp(t, nil)

	body, contentType := multipartBody(t, map[string][2]string{"file": {"song.txt", "# Song Title: Nothing\n"}})
	req := httptest.NewRequest(http.MethodPost, "/convert", body)
	req.Header.Set("Content-Type", contentType)

	if resp := a.request(t, req); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("POST /convert status = %d, want 400", resp.StatusCode)
	}
}
