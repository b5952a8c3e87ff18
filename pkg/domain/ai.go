package domain

// AI hands the call to a voice AI agent.
type AI struct {
	Prompt                 *AIPrompt         `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	PostPrompt             *AIPrompt         `json:"post_prompt,omitempty" yaml:"post_prompt,omitempty"`
	PostPromptURL          *string           `json:"post_prompt_url,omitempty" yaml:"post_prompt_url,omitempty"`
	PostPromptAuthUser     *string           `json:"post_prompt_auth_user,omitempty" yaml:"post_prompt_auth_user,omitempty"`
	PostPromptAuthPassword *string           `json:"post_prompt_auth_password,omitempty" yaml:"post_prompt_auth_password,omitempty"`
	Params                 *AIParams         `json:"params,omitempty" yaml:"params,omitempty"`
	SWAIG                  *SWAIG            `json:"SWAIG,omitempty" yaml:"SWAIG,omitempty"`
	Hints                  List[string]      `json:"hints,omitzero" yaml:"hints,omitempty"`
	Languages              List[AILanguage]  `json:"languages,omitzero" yaml:"languages,omitempty"`
	Pronounce              List[AIPronounce] `json:"pronounce,omitzero" yaml:"pronounce,omitempty"`
}

func (AI) Verb() Verb    { return VerbAI }
func (AI) instruction() {}

func (a AI) MarshalJSON() ([]byte, error) {
	type body AI
	return encodeJSON(tagged(VerbAI, body(a)))
}

func (a AI) MarshalYAML() (any, error) {
	type body AI
	return tagged(VerbAI, body(a)), nil
}

// AIPrompt is the system prompt (or post-prompt) with its sampling
// parameters.
type AIPrompt struct {
	Text             *string  `json:"text,omitempty" yaml:"text,omitempty"`
	Temperature      *float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	TopP             *float64 `json:"top_p,omitempty" yaml:"top_p,omitempty"`
	Confidence       *float64 `json:"confidence,omitempty" yaml:"confidence,omitempty"`
	PresencePenalty  *float64 `json:"presence_penalty,omitempty" yaml:"presence_penalty,omitempty"`
	FrequencyPenalty *float64 `json:"frequency_penalty,omitempty" yaml:"frequency_penalty,omitempty"`
	Result           *Result  `json:"result,omitempty" yaml:"result,omitempty"`
}

// AIParams tunes agent behaviour. Timeouts are in milliseconds. Ranges and
// defaults are enforced by the runtime, not here.
type AIParams struct {
	Direction                *AIDirection `json:"direction,omitempty" yaml:"direction,omitempty"`
	WaitForUser              *bool        `json:"wait_for_user,omitempty" yaml:"wait_for_user,omitempty"`
	EndOfSpeechTimeout       *int         `json:"end_of_speech_timeout,omitempty" yaml:"end_of_speech_timeout,omitempty"`
	AttentionTimeout         *int         `json:"attention_timeout,omitempty" yaml:"attention_timeout,omitempty"`
	InactivityTimeout        *int         `json:"inactivity_timeout,omitempty" yaml:"inactivity_timeout,omitempty"`
	BackgroundFile           *string      `json:"background_file,omitempty" yaml:"background_file,omitempty"`
	BackgroundFileLoops      *int         `json:"background_file_loops,omitempty" yaml:"background_file_loops,omitempty"`
	BackgroundFileVolume     *int         `json:"background_file_volume,omitempty" yaml:"background_file_volume,omitempty"`
	AIVolume                 *int         `json:"ai_volume,omitempty" yaml:"ai_volume,omitempty"`
	LocalTZ                  *string      `json:"local_tz,omitempty" yaml:"local_tz,omitempty"`
	Conscience               *bool        `json:"conscience,omitempty" yaml:"conscience,omitempty"`
	SaveConversation         *bool        `json:"save_conversation,omitempty" yaml:"save_conversation,omitempty"`
	ConversationID           *string      `json:"conversation_id,omitempty" yaml:"conversation_id,omitempty"`
	DigitTimeout             *int         `json:"digit_timeout,omitempty" yaml:"digit_timeout,omitempty"`
	DigitTerminators         *string      `json:"digit_terminators,omitempty" yaml:"digit_terminators,omitempty"`
	EnergyLevel              *float64     `json:"energy_level,omitempty" yaml:"energy_level,omitempty"`
	SWAIGAllowSWML           *bool        `json:"swaig_allow_swml,omitempty" yaml:"swaig_allow_swml,omitempty"`
	SWAIGAllowSettings       *bool        `json:"swaig_allow_settings,omitempty" yaml:"swaig_allow_settings,omitempty"`
	AcknowledgeInterruptions *bool        `json:"acknowledge_interruptions,omitempty" yaml:"acknowledge_interruptions,omitempty"`
	BargeMatchString         *string      `json:"barge_match_string,omitempty" yaml:"barge_match_string,omitempty"`
	VerboseLogs              *bool        `json:"verbose_logs,omitempty" yaml:"verbose_logs,omitempty"`
}

// AILanguage is a language the agent may speak.
type AILanguage struct {
	Name  string  `json:"name" yaml:"name"`
	Code  string  `json:"code" yaml:"code"`
	Voice *string `json:"voice,omitempty" yaml:"voice,omitempty"`
}

// AIPronounce rewrites a word before text-to-speech.
type AIPronounce struct {
	Replace    string `json:"replace" yaml:"replace"`
	With       string `json:"with" yaml:"with"`
	IgnoreCase *bool  `json:"ignore_case,omitempty" yaml:"ignore_case,omitempty"`
}

// SWAIG is the function-calling gateway of the agent.
type SWAIG struct {
	Defaults  *WebHookDefaults    `json:"defaults,omitempty" yaml:"defaults,omitempty"`
	Includes  List[Map]           `json:"includes,omitzero" yaml:"includes,omitempty"`
	Functions List[SWAIGFunction] `json:"functions,omitzero" yaml:"functions,omitempty"`
}

// WebHookDefaults apply to every function without its own webhook settings.
type WebHookDefaults struct {
	WebHookURL          *string `json:"web_hook_url,omitempty" yaml:"web_hook_url,omitempty"`
	WebHookAuthUser     *string `json:"web_hook_auth_user,omitempty" yaml:"web_hook_auth_user,omitempty"`
	WebHookAuthPassword *string `json:"web_hook_auth_password,omitempty" yaml:"web_hook_auth_password,omitempty"`
}

// SWAIGFunction is a function the agent may call, answered either by a
// webhook or by the DataMap expressions.
type SWAIGFunction struct {
	Active          *bool                  `json:"active,omitempty" yaml:"active,omitempty"`
	Function        string                 `json:"function" yaml:"function"`
	MetaData        List[FunctionMetaData] `json:"meta_data,omitzero" yaml:"meta_data,omitempty"`
	MetaDataToken   *string                `json:"meta_data_token,omitempty" yaml:"meta_data_token,omitempty"`
	DataMap         List[DataMap]          `json:"data_map,omitzero" yaml:"data_map,omitempty"`
	WebHookURL      *string                `json:"web_hook_url,omitempty" yaml:"web_hook_url,omitempty"`
	WebHookAuthUser *string                `json:"web_hook_auth_user,omitempty" yaml:"web_hook_auth_user,omitempty"`
	WebHookAuthPass *string                `json:"web_hook_auth_pass,omitempty" yaml:"web_hook_auth_pass,omitempty"`
	Purpose         string                 `json:"purpose" yaml:"purpose"`
	Argument        FunctionArgument       `json:"argument" yaml:"argument"`
}

// FunctionMetaData is attached to a function call.
type FunctionMetaData struct {
	Name  string  `json:"name" yaml:"name"`
	Code  string  `json:"code" yaml:"code"`
	Voice *string `json:"voice,omitempty" yaml:"voice,omitempty"`
}

// DataMap answers a function call by pattern matching or a webhook.
type DataMap struct {
	Expressions List[Expression] `json:"expressions,omitzero" yaml:"expressions,omitempty"`
	Webhooks    *WebhookConfig   `json:"webhooks,omitempty" yaml:"webhooks,omitempty"`
}

// Expression matches String against the regular expression Pattern.
type Expression struct {
	String  string           `json:"string" yaml:"string"`
	Pattern string           `json:"pattern" yaml:"pattern"`
	Output  ExpressionOutput `json:"output" yaml:"output"`
}

// ExpressionOutput is returned to the agent when an Expression matches.
type ExpressionOutput struct {
	Response string    `json:"response" yaml:"response"`
	Action   List[Map] `json:"action,omitzero" yaml:"action,omitempty"`
}

// WebhookConfig is called by a DataMap; its Output may run further
// instructions.
type WebhookConfig struct {
	URL     string        `json:"url" yaml:"url"`
	Headers Map           `json:"headers,omitzero" yaml:"headers,omitempty"`
	Method  RequestMethod `json:"method" yaml:"method"`
	Output  WebhookOutput `json:"output" yaml:"output"`
}

// WebhookOutput is returned to the agent after the webhook completes.
type WebhookOutput struct {
	Action   []Instruction `json:"action" yaml:"action"`
	Response string        `json:"response" yaml:"response"`
}

func (o WebhookOutput) body() any {
	type body WebhookOutput
	o.Action = orEmpty(o.Action)
	return body(o)
}

func (o WebhookOutput) MarshalJSON() ([]byte, error) { return encodeJSON(o.body()) }
func (o WebhookOutput) MarshalYAML() (any, error)    { return o.body(), nil }

// FunctionArgument describes the function's parameters. Type is usually the
// string "object" (the default when nil) but may be a full schema Map.
type FunctionArgument struct {
	Type       any `json:"type" yaml:"type"`
	Properties Map `json:"properties" yaml:"properties"`
}

func (a FunctionArgument) body() any {
	type body FunctionArgument
	if a.Type == nil {
		a.Type = "object"
	}
	a.Properties = openBag(a.Properties)
	return body(a)
}

func (a FunctionArgument) MarshalJSON() ([]byte, error) { return encodeJSON(a.body()) }
func (a FunctionArgument) MarshalYAML() (any, error)    { return a.body(), nil }
