package schema

import (
	"maps"
	"sync"

	"github.com/aretw0/swml/pkg/domain"
)

var (
	catalogueOnce sync.Once
	catalogueMap  map[domain.Verb]Type
)

// Catalogue maps every verb to the type of its configuration value.
// The returned map is a copy.
func Catalogue() map[domain.Verb]Type {
	return maps.Clone(catalogue())
}

// catalogue is built lazily: instruction lists refer back to it.
func catalogue() map[domain.Verb]Type {
	catalogueOnce.Do(func() {
		catalogueMap = buildCatalogue()
	})
	return catalogueMap
}

func recordFields(direction Type) []Field {
	return []Field{
		Opt("stereo", Bool()),
		Opt("format", Enum(domain.RecordFormats()...)),
		Opt("direction", direction),
		Opt("terminators", String()),
		Opt("beep", Bool()),
		Opt("input_sensitivity", Float()),
		Opt("initial_timeout", Float()),
		Opt("end_silence_timeout", Float()),
	}
}

func sayFields() []Field {
	return []Field{
		Opt("volume", Float()),
		Opt("say_voice", String()),
		Opt("say_language", String()),
		Opt("say_gender", String()),
	}
}

func buildCatalogue() map[domain.Verb]Type {
	controlID := Opt("control_id", String())
	params := Opt("params", Map())
	meta := Opt("meta", Map())

	play := append([]Field{
		Opt("url", String()),
		Opt("urls", Slice(String())),
	}, sayFields()...)

	prompt := append([]Field{Req("play", StringOrList())}, sayFields()...)
	prompt = append(prompt,
		Opt("max_digits", Int()),
		Opt("terminators", String()),
		Opt("digit_timeout", Float()),
		Opt("initial_timeout", Float()),
		Opt("speech_timeout", Float()),
		Opt("speech_end_timeout", Float()),
		Opt("speech_language", String()),
		Opt("speech_hints", Slice(String())),
		Opt("result", Result()),
	)

	return map[domain.Verb]Type{
		// control flow
		domain.VerbCond: Object(
			Req("when", String()),
			Req("then", Instructions()),
			Opt("else", Instructions()),
		),
		domain.VerbSwitch: Object(
			Req("variable", String()),
			Opt("case", MapOf(Instructions())),
			Opt("default", Instructions()),
		),
		domain.VerbExecute: Object(
			Req("dest", String()),
			params,
			meta,
			Opt("on_return", Instructions()),
		),
		domain.VerbTransfer: Object(Req("dest", String()), params, meta),
		domain.VerbGoto: Object(
			Req("label", String()),
			Opt("when", String()),
			Opt("max", Int()),
			meta,
		),
		domain.VerbReturn: Any(),
		domain.VerbSet:    Map(),
		domain.VerbUnset:  Object(Req("vars", StringOrList())),
		domain.VerbRequest: Object(
			Req("url", String()),
			Req("method", Enum(domain.RequestMethods()...)),
			Opt("headers", Map()),
			Opt("body", OneOf(String(), Map())),
			Opt("timeout", Float()),
			Opt("connect_timeout", Float()),
			Opt("result", Result()),
			Opt("save_variables", Bool()),
		),

		// call actions
		domain.VerbAnswer: Object(Opt("max_duration", Int())),
		domain.VerbHangup: Object(Opt("reason", Enum(domain.HangupReasons()...))),
		domain.VerbConnect: Object(
			Opt("to", String()),
			Opt("from", String()),
			Opt("headers", Map()),
			Opt("codecs", String()),
			Opt("webrtc_media", Bool()),
			Opt("session_timeout", Int()),
			Opt("ringback", Slice(String())),
			Opt("timeout", Int()),
			Opt("max_duration", Int()),
			Opt("answer_on_bridge", Bool()),
			Opt("call_state_url", String()),
			Opt("call_state_events", Slice(String())),
			Opt("result", Result()),
		),
		domain.VerbPlay:       Object(play...),
		domain.VerbPrompt:     Object(prompt...),
		domain.VerbRecord:     Object(recordFields(Enum(domain.RecordDirections()...))...),
		domain.VerbRecordCall: Object(append([]Field{controlID}, recordFields(Enum(domain.RecordCallDirections()...))...)...),
		domain.VerbStopRecordCall: Object(controlID),
		domain.VerbSendDigits:     Object(Req("digits", String())),
		domain.VerbSendFax: Object(
			Req("document", String()),
			Opt("header_info", String()),
			Opt("identity", String()),
		),
		domain.VerbReceiveFax: OpenObject(),
		domain.VerbSendSMS: Object(
			Req("to_number", String()),
			Req("from_number", String()),
			Opt("body", String()),
			Opt("media", Slice(String())),
			Opt("region", String()),
			Opt("tags", Slice(String())),
		),
		domain.VerbSIPRefer: Object(Req("to_uri", String()), Opt("result", Result())),
		domain.VerbTap: Object(
			Req("uri", String()),
			controlID,
			Opt("direction", Enum(domain.TapDirections()...)),
			Opt("codec", String()),
			Opt("rtp_ptime", Int()),
		),
		domain.VerbStopTap:     Object(controlID),
		domain.VerbDenoise:     OpenObject(),
		domain.VerbStopDenoise: OpenObject(),
		domain.VerbJoinRoom:    Object(Req("name", String())),

		domain.VerbAI: aiType(),
	}
}

func aiType() Type {
	aiPrompt := Object(
		Opt("text", String()),
		Opt("temperature", Float()),
		Opt("top_p", Float()),
		Opt("confidence", Float()),
		Opt("presence_penalty", Float()),
		Opt("frequency_penalty", Float()),
		Opt("result", Result()),
	)

	// Unknown params pass through to the runtime.
	aiParams := OpenObject(
		Opt("direction", Enum(domain.AIDirections()...)),
		Opt("wait_for_user", Bool()),
		Opt("end_of_speech_timeout", Int()),
		Opt("attention_timeout", Int()),
		Opt("inactivity_timeout", Int()),
		Opt("background_file", String()),
		Opt("background_file_loops", Int()),
		Opt("background_file_volume", Int()),
		Opt("ai_volume", Int()),
		Opt("local_tz", String()),
		Opt("conscience", Bool()),
		Opt("save_conversation", Bool()),
		Opt("conversation_id", String()),
		Opt("digit_timeout", Int()),
		Opt("digit_terminators", String()),
		Opt("energy_level", Float()),
		Opt("swaig_allow_swml", Bool()),
		Opt("swaig_allow_settings", Bool()),
		Opt("acknowledge_interruptions", Bool()),
		Opt("barge_match_string", String()),
		Opt("verbose_logs", Bool()),
	)

	language := Object(Req("name", String()), Req("code", String()), Opt("voice", String()))

	expression := Object(
		Req("string", String()),
		Req("pattern", String()),
		Req("output", Object(Req("response", String()), Opt("action", Slice(Map())))),
	)
	webhook := Object(
		Req("url", String()),
		Opt("headers", Map()),
		Req("method", Enum(domain.RequestMethods()...)),
		Req("output", Object(Req("action", Instructions()), Req("response", String()))),
	)

	function := Object(
		Opt("active", Bool()),
		Req("function", String()),
		Opt("meta_data", Slice(language)),
		Opt("meta_data_token", String()),
		Opt("data_map", Slice(Object(Opt("expressions", Slice(expression)), Opt("webhooks", webhook)))),
		Opt("web_hook_url", String()),
		Opt("web_hook_auth_user", String()),
		Opt("web_hook_auth_pass", String()),
		Req("purpose", String()),
		Req("argument", Object(Req("type", OneOf(String(), Map())), Req("properties", Map()))),
	)

	swaig := Object(
		Opt("defaults", Object(
			Opt("web_hook_url", String()),
			Opt("web_hook_auth_user", String()),
			Opt("web_hook_auth_password", String()),
		)),
		Opt("includes", Slice(Map())),
		Opt("functions", Slice(function)),
	)

	return Object(
		Opt("prompt", aiPrompt),
		Opt("post_prompt", aiPrompt),
		Opt("post_prompt_url", String()),
		Opt("post_prompt_auth_user", String()),
		Opt("post_prompt_auth_password", String()),
		Opt("params", aiParams),
		Opt("SWAIG", swaig),
		Opt("hints", Slice(String())),
		Opt("languages", Slice(language)),
		Opt("pronounce", Slice(Object(Req("replace", String()), Req("with", String()), Opt("ignore_case", Bool())))),
	)
}
