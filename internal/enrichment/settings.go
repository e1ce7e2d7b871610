package enrichment

import (
	"strconv"
	"strings"
	"time"

	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
)

// Setting keys of the flat configuration surface, without domain.SETTINGS_PREFIX
const (
	KeyUseLenovoPSREF = "use_lenovo_psref"
	KeyUseIcecat      = "use_icecat"
	KeyUseBestBuy     = "use_bestbuy"
	KeyUsePOD         = "use_pod"
	KeyUseGoogle      = "use_google"
	KeyUseYouTube     = "use_youtube"
	KeyUseAI          = "use_ai"
	// KeyUseGemini is the historical name of KeyUseAI
	KeyUseGemini = "use_gemini"

	KeyIcecatUsername = "icecat_username"
	KeyIcecatPassword = "icecat_password"
	KeyBestBuyAPIKey  = "bestbuy_api_key"
	KeyGoogleCSEKey   = "google_cse_key"
	KeyGoogleCSECX    = "google_cse_cx"
	KeyYouTubeAPIKey  = "youtube_api_key"

	KeyAIProvider   = "ai_provider"
	KeyGeminiAPIKey = "gemini_api_key"
	KeyGeminiModel  = "gemini_model"
	KeyOpenAIAPIKey = "openai_api_key"
	KeyOpenAIModel  = "openai_model"

	KeyAICustomPrompt      = "ai_custom_prompt"
	KeyAIInputName         = "ai_input_name"
	KeyAIInputBrand        = "ai_input_brand"
	KeyAIInputCategory     = "ai_input_category"
	KeyAIInputDescription  = "ai_input_description_air"
	KeyAIInputSpecs        = "ai_input_description_enrich"
	KeyMaxImagesLimit      = "max_images_limit"
	KeyConnectorTimeoutSec = "connector_timeout_seconds"
	KeyConcurrency         = "concurrency"
)

// AIProvider selects the content generation backend
type AIProvider string

const (
	AIProviderGemini AIProvider = "gemini"
	AIProviderOpenAI AIProvider = "openai"
)

const (
	DefaultGeminiModel = "gemini-2.0-flash"
	DefaultOpenAIModel = "gpt-4.1-nano"
)

// Credentials are the per-vendor secrets; the core never validates them
type Credentials struct {
	IcecatUsername string
	IcecatPassword string
	BestBuyAPIKey  string
	GoogleCSEKey   string
	GoogleCSECX    string
	YouTubeAPIKey  string
	GeminiAPIKey   string
	OpenAIAPIKey   string
}

// PromptInputs toggles the product facts sent to the content model
type PromptInputs struct {
	Name        bool
	Brand       bool
	Category    bool
	Description bool
	Specs       bool
}

// Settings is the configuration of one pass, resolved once before it starts
type Settings struct {
	// Enabled holds the per-connector enable flags
	Enabled     map[domain.Source]bool
	Credentials Credentials

	AIProvider     AIProvider
	GeminiModel    string
	OpenAIModel    string
	PromptTemplate string
	PromptInputs   PromptInputs

	MaxImagesPerInvocation int
	ConnectorTimeout       time.Duration
	Concurrency            int
}

// DefaultSettings returns the settings used when the key/value surface is empty
func DefaultSettings(connectorTimeout time.Duration, maxImages int, concurrency int) Settings {
	return Settings{
		Enabled: map[domain.Source]bool{
			domain.SourceLenovoPSREF: true,
		},
		AIProvider:  AIProviderGemini,
		GeminiModel: DefaultGeminiModel,
		OpenAIModel: DefaultOpenAIModel,
		PromptInputs: PromptInputs{
			Name:        true,
			Brand:       true,
			Description: true,
			Specs:       true,
		},
		MaxImagesPerInvocation: maxImages,
		ConnectorTimeout:       connectorTimeout,
		Concurrency:            concurrency,
	}
}

// ParseSettings overlays the flat key/value surface on defaults.
// Keys may carry domain.SETTINGS_PREFIX. Unparseable values keep the default.
func ParseSettings(defaults Settings, kv map[string]string) Settings {
	values := make(map[string]string, len(kv))
	for k, v := range kv {
		values[strings.TrimPrefix(k, domain.SETTINGS_PREFIX)] = strings.TrimSpace(v)
	}

	s := defaults
	s.Enabled = make(map[domain.Source]bool, len(defaults.Enabled))
	for source, on := range defaults.Enabled {
		s.Enabled[source] = on
	}

	flags := map[string]domain.Source{
		KeyUseLenovoPSREF: domain.SourceLenovoPSREF,
		KeyUseIcecat:      domain.SourceIcecat,
		KeyUseBestBuy:     domain.SourceBestBuy,
		KeyUsePOD:         domain.SourceOpenProductData,
		KeyUseGoogle:      domain.SourceGoogle,
		KeyUseYouTube:     domain.SourceYouTube,
		KeyUseGemini:      domain.SourceAI,
		KeyUseAI:          domain.SourceAI,
	}
	// KeyUseAI is applied after KeyUseGemini so the current name wins
	for _, key := range []string{KeyUseLenovoPSREF, KeyUseIcecat, KeyUseBestBuy, KeyUsePOD, KeyUseGoogle, KeyUseYouTube, KeyUseGemini, KeyUseAI} {
		if on, ok := parseBool(values, key); ok {
			s.Enabled[flags[key]] = on
		}
	}

	setString(values, KeyIcecatUsername, &s.Credentials.IcecatUsername)
	setString(values, KeyIcecatPassword, &s.Credentials.IcecatPassword)
	setString(values, KeyBestBuyAPIKey, &s.Credentials.BestBuyAPIKey)
	setString(values, KeyGoogleCSEKey, &s.Credentials.GoogleCSEKey)
	setString(values, KeyGoogleCSECX, &s.Credentials.GoogleCSECX)
	setString(values, KeyYouTubeAPIKey, &s.Credentials.YouTubeAPIKey)
	setString(values, KeyGeminiAPIKey, &s.Credentials.GeminiAPIKey)
	setString(values, KeyOpenAIAPIKey, &s.Credentials.OpenAIAPIKey)
	setString(values, KeyGeminiModel, &s.GeminiModel)
	setString(values, KeyOpenAIModel, &s.OpenAIModel)
	setString(values, KeyAICustomPrompt, &s.PromptTemplate)

	if p := AIProvider(strings.ToLower(values[KeyAIProvider])); p == AIProviderGemini || p == AIProviderOpenAI {
		s.AIProvider = p
	}

	inputs := []struct {
		key string
		dst *bool
	}{
		{KeyAIInputName, &s.PromptInputs.Name},
		{KeyAIInputBrand, &s.PromptInputs.Brand},
		{KeyAIInputCategory, &s.PromptInputs.Category},
		{KeyAIInputDescription, &s.PromptInputs.Description},
		{KeyAIInputSpecs, &s.PromptInputs.Specs},
	}
	for _, in := range inputs {
		if on, ok := parseBool(values, in.key); ok {
			*in.dst = on
		}
	}

	if n, ok := parsePositiveInt(values, KeyMaxImagesLimit); ok {
		s.MaxImagesPerInvocation = n
	}
	if n, ok := parsePositiveInt(values, KeyConnectorTimeoutSec); ok {
		s.ConnectorTimeout = time.Duration(n) * time.Second
	}
	if n, ok := parsePositiveInt(values, KeyConcurrency); ok {
		s.Concurrency = n
	}
	if s.Concurrency < 1 {
		s.Concurrency = 1
	}

	return s
}

// IsEnabled reports whether a connector is switched on
func (s Settings) IsEnabled(source domain.Source) bool {
	return s.Enabled[source]
}

func setString(values map[string]string, key string, dst *string) {
	if v, ok := values[key]; ok && v != "" {
		*dst = v
	}
}

func parseBool(values map[string]string, key string) (bool, bool) {
	v, ok := values[key]
	if !ok {
		return false, false
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on", "si", "sí":
		return true, true
	case "", "0", "false", "no", "off":
		return false, true
	}
	return false, false
}

func parsePositiveInt(values map[string]string, key string) (int, bool) {
	v, ok := values[key]
	if !ok || v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// SettingKeys lists every key of the flat configuration surface
var SettingKeys = []string{
	KeyUseLenovoPSREF, KeyUseIcecat, KeyUseBestBuy, KeyUsePOD, KeyUseGoogle, KeyUseYouTube, KeyUseAI, KeyUseGemini,
	KeyIcecatUsername, KeyIcecatPassword, KeyBestBuyAPIKey, KeyGoogleCSEKey, KeyGoogleCSECX, KeyYouTubeAPIKey,
	KeyAIProvider, KeyGeminiAPIKey, KeyGeminiModel, KeyOpenAIAPIKey, KeyOpenAIModel,
	KeyAICustomPrompt, KeyAIInputName, KeyAIInputBrand, KeyAIInputCategory, KeyAIInputDescription, KeyAIInputSpecs,
	KeyMaxImagesLimit, KeyConnectorTimeoutSec, KeyConcurrency,
}

// IsSettingKey reports whether key, with or without domain.SETTINGS_PREFIX, belongs to the surface
func IsSettingKey(key string) bool {
	key = strings.TrimPrefix(key, domain.SETTINGS_PREFIX)
	for _, k := range SettingKeys {
		if k == key {
			return true
		}
	}
	return false
}

// IsSecretKey reports whether the value of key is a credential
func IsSecretKey(key string) bool {
	key = strings.TrimPrefix(key, domain.SETTINGS_PREFIX)
	switch key {
	case KeyIcecatPassword, KeyBestBuyAPIKey, KeyGoogleCSEKey, KeyYouTubeAPIKey, KeyGeminiAPIKey, KeyOpenAIAPIKey:
		return true
	}
	return false
}
