package gemini

import (
	"ai-chat-be/pkg/llm"
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const baseURL = "https://generativelanguage.googleapis.com/v1beta/models"

type GeminiProvider struct {
	APIKey    string
	ModelName string
	Client    *http.Client
}

var _ llm.LLMProvider = &GeminiProvider{}

func NewGeminiProvider(apiKey, modelName string) *GeminiProvider {
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	return &GeminiProvider{
		APIKey:    apiKey,
		ModelName: modelName,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenCfg   `json:"generationConfig,omitempty"`
}

type geminiGenCfg struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiCandidate struct {
	Content *geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

func (g *GeminiProvider) buildRequest(history []llm.Message, opts []llm.Option) (geminiRequest, string) {
	options := &llm.Options{}
	for _, opt := range opts {
		opt(options)
	}

	payload := geminiRequest{}
	for _, msg := range history {
		switch msg.Role {
		case "system":
			// Gemini carries the system prompt out of band
			payload.SystemInstruction = &geminiContent{
				Parts: []geminiPart{{Text: msg.Content}},
			}
		case "assistant", "model":
			payload.Contents = append(payload.Contents, geminiContent{
				Parts: []geminiPart{{Text: msg.Content}},
				Role:  "model",
			})
		default:
			payload.Contents = append(payload.Contents, geminiContent{
				Parts: []geminiPart{{Text: msg.Content}},
				Role:  "user",
			})
		}
	}

	if options.Temperature > 0 || options.MaxTokens > 0 {
		payload.GenerationConfig = &geminiGenCfg{
			Temperature:     options.Temperature,
			MaxOutputTokens: options.MaxTokens,
		}
	}

	model := g.ModelName
	if options.Model != "" {
		model = options.Model
	}
	return payload, model
}

func (g *GeminiProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	payload, model := g.buildRequest(history, opts)

	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s:generateContent", baseURL, model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-goog-api-key", g.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := g.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes geminiResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", err
	}
	if len(geminiRes.Candidates) == 0 || geminiRes.Candidates[0].Content == nil || len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}

// ChatStream uses streamGenerateContent with SSE framing and forwards each
// candidate delta.
func (g *GeminiProvider) ChatStream(ctx context.Context, history []llm.Message, opts ...llm.Option) (<-chan string, <-chan error) {
	chunks := make(chan string)
	errs := make(chan error, 1)

	go func() {
		defer close(chunks)
		defer close(errs)

		payload, model := g.buildRequest(history, opts)
		payloadJson, err := json.Marshal(payload)
		if err != nil {
			errs <- err
			return
		}

		url := fmt.Sprintf("%s/%s:streamGenerateContent?alt=sse", baseURL, model)
		req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadJson))
		if err != nil {
			errs <- err
			return
		}
		req.Header.Set("x-goog-api-key", g.APIKey)
		req.Header.Set("Content-Type", "application/json")

		res, err := g.Client.Do(req)
		if err != nil {
			errs <- err
			return
		}
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			resBody, _ := io.ReadAll(res.Body)
			errs <- fmt.Errorf(
				"status error, got status %d. with response body %s",
				res.StatusCode,
				string(resBody),
			)
			return
		}

		scanner := bufio.NewScanner(res.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := bytes.TrimSpace(scanner.Bytes())
			if !bytes.HasPrefix(line, []byte("data:")) {
				continue
			}
			data := bytes.TrimSpace(bytes.TrimPrefix(line, []byte("data:")))
			if len(data) == 0 || bytes.Equal(data, []byte("[DONE]")) {
				continue
			}

			var chunk geminiResponse
			if err := json.Unmarshal(data, &chunk); err != nil {
				errs <- fmt.Errorf("unmarshal stream chunk: %w", err)
				return
			}
			if len(chunk.Candidates) == 0 || chunk.Candidates[0].Content == nil {
				continue
			}
			for _, part := range chunk.Candidates[0].Content.Parts {
				if part.Text == "" {
					continue
				}
				select {
				case chunks <- part.Text:
				case <-ctx.Done():
					errs <- ctx.Err()
					return
				}
			}
		}
		if err := scanner.Err(); err != nil {
			errs <- fmt.Errorf("read stream: %w", err)
		}
	}()

	return chunks, errs
}

func (g *GeminiProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return g.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}
