package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := encodeJSON(v)
	require.NoError(t, err)
	return string(b)
}

func mustYAML(t *testing.T, v any) string {
	t.Helper()
	b, err := yaml.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestInstructionJSON(t *testing.T) {
	tests := []struct {
		name string
		in   Instruction
		want string
	}{
		{"shorthand answer", ShortAnswer, `"answer"`},
		{"answer with max duration", Answer{MaxDuration: Ptr(3600)}, `{"answer":{"max_duration":3600}}`},
		{"empty answer", Answer{}, `{"answer":{}}`},
		{"hangup reason", Hangup{Reason: Ptr(ReasonBusy)}, `{"hangup":{"reason":"busy"}}`},
		{"play url", Play{URL: Ptr("say:Hello")}, `{"play":{"url":"say:Hello"}}`},
		{"play volume zero kept", Play{URL: Ptr("a.mp3"), Volume: Ptr(0.0)}, `{"play":{"url":"a.mp3","volume":0}}`},
		{"record beep false kept", Record{Beep: Ptr(false)}, `{"record":{"beep":false}}`},
		{"goto", Goto{Label: "top", Max: Ptr(3)}, `{"goto":{"label":"top","max":3}}`},
		{"return string", Return{Value: "done"}, `{"return":"done"}`},
		{"return nil", Return{}, `{"return":null}`},
		{"set", Set{Vars: Map{"a": 1}}, `{"set":{"a":1}}`},
		{"set nil", Set{}, `{"set":{}}`},
		{"unset single", Unset{Vars: StringOrList{"a"}}, `{"unset":{"vars":"a"}}`},
		{"unset list", Unset{Vars: StringOrList{"a", "b"}}, `{"unset":{"vars":["a","b"]}}`},
		{"receive fax open bag", ReceiveFax{}, `{"receive_fax":{}}`},
		{"denoise passthrough", Denoise{Options: Map{"level": 2}}, `{"denoise":{"level":2}}`},
		{"tap", Tap{URI: "wss://example.com", RTPPtime: Ptr(20)}, `{"tap":{"uri":"wss://example.com","rtp_ptime":20}}`},
		{"transfer", Transfer{Dest: "sales"}, `{"transfer":{"dest":"sales"}}`},
		{"join room", JoinRoom{Name: "standup"}, `{"join_room":{"name":"standup"}}`},
		{"send sms", SendSMS{ToNumber: "+1", FromNumber: "+2", Body: Ptr("hi")}, `{"send_sms":{"to_number":"+1","from_number":"+2","body":"hi"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.want, mustJSON(t, tt.in))
		})
	}
}

func TestInstructionVerb(t *testing.T) {
	for _, in := range []Instruction{
		Answer{}, Hangup{}, Connect{}, Play{}, Prompt{}, Record{}, RecordCall{},
		StopRecordCall{}, SendDigits{}, SendFax{}, ReceiveFax{}, SendSMS{},
		SIPRefer{}, Tap{}, StopTap{}, Denoise{}, StopDenoise{}, JoinRoom{},
		Cond{}, Switch{}, Execute{}, Transfer{}, Goto{}, Return{}, Set{},
		Unset{}, Request{}, AI{},
	} {
		verb := in.Verb()
		assert.True(t, verb.Known(), "verb %q", verb)

		var rendered map[string]any
		require.NoError(t, json.Unmarshal([]byte(mustJSON(t, in)), &rendered))
		assert.Len(t, rendered, 1)
		assert.Contains(t, rendered, string(verb))
	}
	assert.Len(t, Verbs(), 28)
}

func TestShorthand(t *testing.T) {
	for _, s := range Shorthands() {
		assert.True(t, s.Valid())
		assert.True(t, s.Verb().Known(), "shorthand %q", s)
		assert.Equal(t, `"`+string(s)+`"`, mustJSON(t, s))
	}
	assert.False(t, Shorthand("play").Valid())
}

func TestNoHTMLEscaping(t *testing.T) {
	c := Cond{When: "x < 1 && y > 2", Then: []Instruction{ShortHangup}}
	assert.Equal(t, `{"cond":{"when":"x < 1 && y > 2","then":["hangup"],"else":[]}}`, mustJSON(t, c))
}

func TestCondEmptyBranches(t *testing.T) {
	assert.JSONEq(t, `{"cond":{"when":"true","then":[],"else":[]}}`, mustJSON(t, Cond{When: "true"}))
}

func TestSwitchCaseOrder(t *testing.T) {
	s := Switch{
		Variable: "digit",
		Cases: []Case{
			{Label: "9", Actions: []Instruction{ShortHangup}},
			{Label: "1", Actions: []Instruction{Transfer{Dest: "sales"}}},
			{Label: "5"},
		},
	}
	assert.Equal(t,
		`{"switch":{"variable":"digit","case":{"9":["hangup"],"1":[{"transfer":{"dest":"sales"}}],"5":[]}}}`,
		mustJSON(t, s))
}

func TestSwitchDefault(t *testing.T) {
	t.Run("nil default omitted", func(t *testing.T) {
		assert.JSONEq(t, `{"switch":{"variable":"v"}}`, mustJSON(t, Switch{Variable: "v"}))
	})
	t.Run("empty default kept", func(t *testing.T) {
		s := Switch{Variable: "v", Default: []Instruction{}}
		assert.JSONEq(t, `{"switch":{"variable":"v","default":[]}}`, mustJSON(t, s))
	})
}

func TestExecuteOnReturn(t *testing.T) {
	e := Execute{Dest: "sub", Params: Map{"x": "y"}, OnReturn: []Instruction{}}
	assert.JSONEq(t, `{"execute":{"dest":"sub","params":{"x":"y"},"on_return":[]}}`, mustJSON(t, e))
	assert.JSONEq(t, `{"execute":{"dest":"sub"}}`, mustJSON(t, Execute{Dest: "sub"}))
}

func TestEmptyOptionalCollections(t *testing.T) {
	tests := []struct {
		name     string
		in       Instruction
		wantJSON string
		wantYAML string
	}{
		{
			"execute params",
			Execute{Dest: "x", Params: Map{}, OnReturn: []Instruction{}},
			`{"execute":{"dest":"x","params":{},"on_return":[]}}`,
			"execute:\n    dest: x\n    params: {}\n    on_return: []\n",
		},
		{
			"connect lists and headers",
			Connect{Ringback: []string{}, Headers: Map{}},
			`{"connect":{"headers":{},"ringback":[]}}`,
			"connect:\n    headers: {}\n    ringback: []\n",
		},
		{
			"ai hints and functions",
			AI{Hints: []string{}, SWAIG: &SWAIG{Functions: []SWAIGFunction{}}},
			`{"ai":{"SWAIG":{"functions":[]},"hints":[]}}`,
			"ai:\n    SWAIG:\n        functions: []\n    hints: []\n",
		},
		{
			"nil stays omitted",
			Transfer{Dest: "sales"},
			`{"transfer":{"dest":"sales"}}`,
			"transfer:\n    dest: sales\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.wantJSON, mustJSON(t, tt.in))
			assert.Equal(t, tt.wantYAML, mustYAML(t, tt.in))
		})
	}
}

func TestNestedConditional(t *testing.T) {
	inner := Switch{Variable: "lang", Cases: []Case{{Label: "en", Actions: []Instruction{Play{URL: Ptr("say:Hi")}}}}}
	outer := Cond{When: "vars.ok", Then: []Instruction{inner}, Else: []Instruction{ShortHangup}}
	assert.JSONEq(t,
		`{"cond":{"when":"vars.ok","then":[{"switch":{"variable":"lang","case":{"en":[{"play":{"url":"say:Hi"}}]}}}],"else":["hangup"]}}`,
		mustJSON(t, outer))
}

func TestResult(t *testing.T) {
	single := Request{URL: "https://example.com", Method: MethodGet, Result: ResultOf(Cond{When: "ok"})}
	assert.JSONEq(t,
		`{"request":{"url":"https://example.com","method":"GET","result":{"cond":{"when":"ok","then":[],"else":[]}}}}`,
		mustJSON(t, single))

	list := SIPRefer{ToURI: "sip:a@b", Result: ResultList(Switch{Variable: "v"})}
	assert.JSONEq(t,
		`{"sip_refer":{"to_uri":"sip:a@b","result":[{"switch":{"variable":"v"}}]}}`,
		mustJSON(t, list))

	assert.JSONEq(t, `{"sip_refer":{"to_uri":"x","result":[]}}`, mustJSON(t, SIPRefer{ToURI: "x", Result: ResultList()}))
}

func TestPromptPlay(t *testing.T) {
	p := Prompt{Play: StringOrList{"say:Press one"}, MaxDigits: Ptr(1), Terminators: Ptr("#")}
	assert.JSONEq(t, `{"prompt":{"play":"say:Press one","max_digits":1,"terminators":"#"}}`, mustJSON(t, p))

	p = Prompt{Play: StringOrList{"a.wav", "b.wav"}, SpeechTimeout: Ptr(2.5)}
	assert.JSONEq(t, `{"prompt":{"play":["a.wav","b.wav"],"speech_timeout":2.5}}`, mustJSON(t, p))
}

func TestAIJSON(t *testing.T) {
	ai := AI{
		Prompt: &AIPrompt{Text: Ptr("You are helpful."), Temperature: Ptr(0.3)},
		Params: &AIParams{Direction: Ptr(AIInbound), WaitForUser: Ptr(false)},
		SWAIG: &SWAIG{
			Defaults: &WebHookDefaults{WebHookURL: Ptr("https://hooks.example.com")},
			Functions: []SWAIGFunction{{
				Function:        "get_weather",
				Purpose:         "look up the weather",
				WebHookAuthPass: Ptr("secret"),
				Argument:        FunctionArgument{Type: "object", Properties: Map{"city": Map{"type": "string"}}},
			}},
		},
		Hints: []string{"weather"},
	}

	want := `{"ai":{
		"prompt":{"text":"You are helpful.","temperature":0.3},
		"params":{"direction":"inbound","wait_for_user":false},
		"SWAIG":{
			"defaults":{"web_hook_url":"https://hooks.example.com"},
			"functions":[{
				"function":"get_weather",
				"web_hook_auth_pass":"secret",
				"purpose":"look up the weather",
				"argument":{"type":"object","properties":{"city":{"type":"string"}}}
			}]
		},
		"hints":["weather"]
	}}`
	assert.JSONEq(t, want, mustJSON(t, ai))
}

func TestWebhookOutputActions(t *testing.T) {
	dm := DataMap{Webhooks: &WebhookConfig{
		URL:    "https://api.example.com",
		Method: MethodPost,
		Output: WebhookOutput{Response: "ok", Action: []Instruction{ShortHangup}},
	}}
	assert.JSONEq(t,
		`{"webhooks":{"url":"https://api.example.com","method":"POST","output":{"action":["hangup"],"response":"ok"}}}`,
		mustJSON(t, dm))
}

func TestInstructionYAML(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"shorthand", ShortHangup, "hangup\n"},
		{"play", Play{URL: Ptr("say:Hello")}, "play:\n    url: say:Hello\n"},
		{"record beep false", Record{Beep: Ptr(false)}, "record:\n    beep: false\n"},
		{"unset single", Unset{Vars: StringOrList{"a"}}, "unset:\n    vars: a\n"},
		{
			"switch keeps case order",
			Switch{Variable: "d", Cases: []Case{{Label: "2", Actions: []Instruction{ShortHangup}}, {Label: "1"}}},
			"switch:\n    variable: d\n    case:\n        \"2\":\n            - hangup\n        \"1\": []\n",
		},
		{"cond empty branches", Cond{When: "x"}, "cond:\n    when: x\n    then: []\n    else: []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustYAML(t, tt.in))
		})
	}
}

func TestEnumsValid(t *testing.T) {
	assert.True(t, MethodPut.Valid())
	assert.False(t, RequestMethod("PATCH").Valid())
	assert.True(t, ReasonDecline.Valid())
	assert.True(t, FormatMP3.Valid())
	assert.False(t, RecordFormat("ogg").Valid())
	assert.True(t, RecordCallBoth.Valid())
	assert.False(t, RecordDirection("both").Valid())
	assert.True(t, TapHear.Valid())
	assert.True(t, AIOutbound.Valid())
}

func TestOrderedMap(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("b", 3)
	assert.Equal(t, `{"b":3,"a":2}`, mustJSON(t, m))
	assert.Equal(t, "b: 3\na: 2\n", mustYAML(t, m))
	assert.Equal(t, `{}`, mustJSON(t, OrderedMap[int]{}))
}
