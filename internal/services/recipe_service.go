package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/freshkeeper/freshkeeper-api/internal/models"
	log "github.com/sirupsen/logrus"
)

const (
	defaultSuggestionLimit = 10
	fallbackResultsPerItem = 3
	summaryMaxLength       = 200
)

// Sentinel errors for the recipe aggregator
var (
	// ErrAPIKeyNotConfigured means no provider credential is set; no network
	// call is attempted in that case
	ErrAPIKeyNotConfigured = errors.New("spoonacular API key not configured, add SPOONACULAR_API_KEY to your .env file")
	// ErrNoRecipesFound signals an empty result after both lookup
	// strategies. It is a distinct outcome, not a failure.
	ErrNoRecipesFound = errors.New("no recipes found even with individual ingredients")
)

// stripTags removes HTML tags from the provider's summary markup. This is a
// plain tag-stripping pass sufficient for Spoonacular's known summary
// format, not a general HTML sanitizer.
var stripTags = regexp.MustCompile(`<[^>]*>`)

// RecipeService suggests recipes for a set of ingredient names
type RecipeService interface {
	// Suggest queries the recipe provider for recipes using the given
	// ingredient names, returning at most limit suggestions. A limit of
	// zero or less means the default of 10.
	Suggest(ingredientNames []string, limit int) ([]models.RecipeSuggestion, error)
}

type recipeService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewRecipeService creates a RecipeService backed by the Spoonacular API.
// baseURL is the provider root, e.g. https://api.spoonacular.com.
func NewRecipeService(apiKey, baseURL string) RecipeService {
	return &recipeService{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewRecipeServiceWithClient creates a RecipeService with a caller-supplied
// HTTP client, used by tests
func NewRecipeServiceWithClient(apiKey, baseURL string, client *http.Client) RecipeService {
	return &recipeService{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

// recipeMatch is the provider's findByIngredients result shape
type recipeMatch struct {
	ID                    int              `json:"id"`
	UsedIngredients       []ingredientInfo `json:"usedIngredients"`
	MissedIngredients     []ingredientInfo `json:"missedIngredients"`
	UsedIngredientCount   int              `json:"usedIngredientCount"`
	MissedIngredientCount int              `json:"missedIngredientCount"`
}

type ingredientInfo struct {
	Name string `json:"name"`
}

// recipeDetail is the provider's per-recipe information shape
type recipeDetail struct {
	Title                string             `json:"title"`
	Image                string             `json:"image"`
	ReadyInMinutes       *int               `json:"readyInMinutes"`
	Servings             *int               `json:"servings"`
	SourceURL            string             `json:"sourceUrl"`
	Summary              string             `json:"summary"`
	AnalyzedInstructions []instructionGroup `json:"analyzedInstructions"`
}

type instructionGroup struct {
	Steps []struct {
		Number int    `json:"number"`
		Step   string `json:"step"`
	} `json:"steps"`
}

func (s *recipeService) Suggest(ingredientNames []string, limit int) ([]models.RecipeSuggestion, error) {
	if s.apiKey == "" {
		return nil, ErrAPIKeyNotConfigured
	}
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}

	matches, err := s.findByIngredients(strings.Join(ingredientNames, ","), limit)
	if err != nil {
		return nil, fmt.Errorf("recipe search failed: %w", err)
	}

	if len(matches) == 0 {
		log.Info("No recipes found with all ingredients, trying individual ingredients")
		matches = s.fallbackPerIngredient(ingredientNames, limit)
	}

	if len(matches) == 0 {
		return []models.RecipeSuggestion{}, ErrNoRecipesFound
	}

	suggestions := make([]models.RecipeSuggestion, 0, len(matches))
	for _, match := range matches {
		detail, err := s.fetchDetail(match.ID)
		if err != nil {
			// Partial success wins over whole-request failure: a recipe
			// whose detail lookup fails is dropped, the rest survive.
			log.WithError(err).WithField("recipe_id", match.ID).Warn("Dropping recipe, detail lookup failed")
			continue
		}
		suggestions = append(suggestions, buildSuggestion(match, detail))
	}
	return suggestions, nil
}

// findByIngredients issues one batch lookup against the provider
func (s *recipeService) findByIngredients(ingredients string, number int) ([]recipeMatch, error) {
	params := url.Values{}
	params.Set("apiKey", s.apiKey)
	params.Set("ingredients", ingredients)
	params.Set("number", fmt.Sprintf("%d", number))
	params.Set("limitLicense", "true")
	params.Set("ranking", "2")
	params.Set("ignorePantry", "false")

	resp, err := s.client.Get(s.baseURL + "/recipes/findByIngredients?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to call recipe search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recipe search API error %d: %s", resp.StatusCode, string(body))
	}

	var matches []recipeMatch
	if err := json.Unmarshal(body, &matches); err != nil {
		return nil, fmt.Errorf("failed to parse recipe search JSON: %w", err)
	}
	return matches, nil
}

// fallbackPerIngredient issues one lookup per ingredient name, skipping any
// that fail, then de-duplicates by recipe ID (first occurrence wins) and
// truncates to limit
func (s *recipeService) fallbackPerIngredient(ingredientNames []string, limit int) []recipeMatch {
	var accumulated []recipeMatch
	for _, name := range ingredientNames {
		matches, err := s.findByIngredients(name, fallbackResultsPerItem)
		if err != nil {
			log.WithError(err).WithField("ingredient", name).Warn("Skipping ingredient in fallback lookup")
			continue
		}
		accumulated = append(accumulated, matches...)
	}

	seen := make(map[int]bool)
	deduped := make([]recipeMatch, 0, len(accumulated))
	for _, match := range accumulated {
		if seen[match.ID] {
			continue
		}
		seen[match.ID] = true
		deduped = append(deduped, match)
	}
	if len(deduped) > limit {
		deduped = deduped[:limit]
	}
	return deduped
}

// fetchDetail issues the by-id information lookup for one recipe
func (s *recipeService) fetchDetail(id int) (*recipeDetail, error) {
	params := url.Values{}
	params.Set("apiKey", s.apiKey)
	params.Set("includeNutrition", "false")

	resp, err := s.client.Get(fmt.Sprintf("%s/recipes/%d/information?%s", s.baseURL, id, params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to call recipe information: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe information response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recipe information API error %d: %s", resp.StatusCode, string(body))
	}

	var detail recipeDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("failed to parse recipe information JSON: %w", err)
	}
	return &detail, nil
}

// buildSuggestion reshapes a provider match plus its detail into the
// response entity
func buildSuggestion(match recipeMatch, detail *recipeDetail) models.RecipeSuggestion {
	title := detail.Title
	if title == "" {
		title = "Unknown Recipe"
	}

	suggestion := models.RecipeSuggestion{
		ID:                    match.ID,
		Title:                 title,
		Image:                 detail.Image,
		ReadyInMinutes:        numericOrUnknown(detail.ReadyInMinutes),
		Servings:              numericOrUnknown(detail.Servings),
		SourceURL:             detail.SourceURL,
		Summary:               TruncateSummary(detail.Summary),
		UsedIngredients:       ingredientNames(match.UsedIngredients),
		MissedIngredients:     ingredientNames(match.MissedIngredients),
		UsedIngredientCount:   match.UsedIngredientCount,
		MissedIngredientCount: match.MissedIngredientCount,
		Instructions:          []models.InstructionStep{},
		Source:                "Spoonacular",
	}

	for _, group := range detail.AnalyzedInstructions {
		for _, step := range group.Steps {
			suggestion.Instructions = append(suggestion.Instructions, models.InstructionStep{
				Number: step.Number,
				Step:   step.Step,
			})
		}
	}
	return suggestion
}

// TruncateSummary strips HTML tags from the provider's summary markup and
// caps the plain text at 200 characters, appending an ellipsis when
// truncation happened. The cap counts runes, not bytes, so multibyte
// summaries are never cut inside a UTF-8 sequence.
func TruncateSummary(summary string) string {
	plain := stripTags.ReplaceAllString(summary, "")
	runes := []rune(plain)
	if len(runes) > summaryMaxLength {
		return string(runes[:summaryMaxLength]) + "..."
	}
	return plain
}

func numericOrUnknown(value *int) interface{} {
	if value == nil {
		return "Unknown"
	}
	return *value
}

func ingredientNames(infos []ingredientInfo) []string {
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name)
	}
	return names
}
