package categorygen

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/oghanim/triviarena/internal/constants"
	"github.com/oghanim/triviarena/internal/dedupe"
	"github.com/oghanim/triviarena/internal/logging"
)

// promptTemplate can be set at application startup to customize the
// prompt used when requesting category labels. Use the token "{{count}}"
// where the number of categories will be substituted.
var promptTemplate string

// SetPromptTemplate sets a custom prompt template for category
// generation. Call from main after loading configuration.
func SetPromptTemplate(t string) {
	promptTemplate = strings.TrimSpace(t)
}

// Fallback returns deterministic placeholder labels. It is used whenever
// the remote generator is unavailable or returns an unusable result, so
// generation never surfaces an error to the session.
func Fallback(count int) []string {
	out := make([]string, count)
	for i := range out {
		out[i] = "Category " + strconv.Itoa(i+1)
	}
	return out
}

// Generate returns count category labels for the session identified by
// key. Concurrent calls for the same key share one remote request. Any
// failure degrades to Fallback; the error is logged, never returned.
func Generate(ctx context.Context, key string, count int) []string {
	v, err, _ := dedupe.CategoryGroup.Do(key+":"+strconv.Itoa(count), func() (interface{}, error) {
		return callOpenAI(ctx, count)
	})
	if err != nil {
		logging.Warn("category generation failed; using fallback", logging.Fields{constants.LogFieldSource: "openai", constants.LogFieldCount: count, "error": err.Error()})
		return Fallback(count)
	}
	cats, _ := v.([]string)
	if len(cats) < count {
		logging.Warn("category generation returned too few labels; using fallback", logging.Fields{constants.LogFieldCount: count, "got": len(cats)})
		return Fallback(count)
	}
	return cats[:count]
}

// callOpenAI invokes the Chat Completions API to generate trivia category
// labels. It returns the parsed labels or an error if the request failed.
func callOpenAI(ctx context.Context, count int) ([]string, error) {
	apiKey := os.Getenv(constants.EnvOpenAIAPIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%s not set", constants.EnvOpenAIAPIKey)
	}

	prompt := promptTemplate
	if prompt == "" {
		prompt = "Generate {{count}} unique, short trivia categories suitable for a Jeopardy-style game. Focus on topics like history, science, literature, and general knowledge. Respond with a JSON object {\"categories\": [...]} and nothing else."
	}
	prompt = strings.ReplaceAll(prompt, "{{count}}", strconv.Itoa(count))

	payload := map[string]interface{}{
		"model": constants.OpenAIChatModel,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}
	b, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, "POST", constants.OpenAIBaseURL+constants.OpenAIChatCompletionsPath, strings.NewReader(string(b)))
	if err != nil {
		return nil, err
	}
	req.Header.Set(constants.HeaderAuthorization, constants.BearerPrefix+apiKey)
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("openai chat completions returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices")
	}

	return parseCategories(parsed.Choices[0].Message.Content)
}

// parseCategories extracts the labels from the model's reply. The model
// is asked for {"categories": [...]} but replies are occasionally wrapped
// in markdown fences, so strip those before decoding.
func parseCategories(content string) ([]string, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var result struct {
		Categories []string `json:"categories"`
	}
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("unparseable categories payload: %w", err)
	}

	out := make([]string, 0, len(result.Categories))
	for _, c := range result.Categories {
		c = strings.TrimSpace(c)
		if c != "" {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("openai returned no usable categories")
	}
	return out, nil
}
