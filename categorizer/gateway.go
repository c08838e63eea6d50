package categorizer

import (
	"context"
	"errors"
	"os"
	"strings"

	"google.golang.org/genai"
)

// ErrNotConfigured 는 게이트웨이 API 키가 설정되어 있지 않을 때 반환된다.
// 호출자는 이 오류를 치명적으로 다루지 않고 폴백 태그 경로로 처리해야 한다.
var ErrNotConfigured = errors.New("GEMINI_API_KEY environment variable is not set")

// Gateway calls the multimodal inference service that proposes raw tag
// text. One network round trip per GenerateTags call; the caller bounds it
// with a context timeout.
type Gateway struct {
	model string
}

func NewGateway(model string) *Gateway {
	return &Gateway{model: model}
}

// GenerateTags sends the composed request and returns the raw response
// text. The reply is untrusted free-form text; run it through
// NormalizeTags before use.
func (g *Gateway) GenerateTags(ctx context.Context, req Request) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return "", err
	}

	parts := make([]*genai.Part, 0, len(req.Parts))
	for _, p := range req.Parts {
		switch p.Type {
		case PartText:
			parts = append(parts, &genai.Part{Text: p.Text})
		case PartImage:
			parts = append(parts, &genai.Part{
				FileData: &genai.FileData{
					FileURI:  p.ImageURL,
					MIMEType: imageMIMEType(p.ImageURL),
				},
			})
		}
	}

	contents := []*genai.Content{
		{Role: genai.RoleUser, Parts: parts},
	}

	result, err := client.Models.GenerateContent(
		ctx,
		g.model,
		contents,
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: req.SystemPrompt}}},
		},
	)
	if err != nil {
		return "", err
	}

	return result.Text(), nil
}

// imageMIMEType guesses the MIME type from the URL extension.
// 알 수 없는 확장자는 image/png 로 둔다.
func imageMIMEType(url string) string {
	lower := strings.ToLower(url)
	if i := strings.IndexAny(lower, "?#"); i >= 0 {
		lower = lower[:i]
	}
	switch {
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(lower, ".webp"):
		return "image/webp"
	case strings.HasSuffix(lower, ".gif"):
		return "image/gif"
	default:
		return "image/png"
	}
}
