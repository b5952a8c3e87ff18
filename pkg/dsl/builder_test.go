package dsl

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/swml/pkg/domain"
)

func TestBuilder_SimpleFlow(t *testing.T) {
	b := New()

	b.Section("main").
		Answer().
		Say("Hello, DSL!").
		Execute("goodbye", domain.Map{"reason": "demo"})

	b.Section("goodbye").
		Play("https://cdn.example.com/bye.mp3").
		Hangup()

	out, err := b.Build().ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"sections":{
		"main":["answer",{"play":{"url":"say:Hello, DSL!"}},{"execute":{"dest":"goodbye","params":{"reason":"demo"}}}],
		"goodbye":[{"play":{"url":"https://cdn.example.com/bye.mp3"}},"hangup"]
	}}`, out)
}

func TestBuilder_SectionReuse(t *testing.T) {
	b := New()
	first := b.Section("main").Answer()
	second := b.Section("main").Hangup()

	assert.Same(t, first, second)
	assert.Equal(t, 2, first.Section().Len())
	assert.Equal(t, []string{"main"}, b.Build().SectionNames())
}

func TestBuilder_BuildIsLive(t *testing.T) {
	b := New()
	doc := b.Build()
	b.Section("late").Answer()

	s, ok := doc.Section("late")
	require.True(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestBlock_Cond(t *testing.T) {
	b := New()
	b.Section("main").Cond("vars.vip == true",
		func(b *Block) { b.Transfer("vip") },
		nil,
	)

	out, err := b.Build().ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"sections":{"main":[{"cond":{"when":"vars.vip == true","then":[{"transfer":{"dest":"vip"}}],"else":[]}}]}}`, out)
}

func TestBlock_Switch(t *testing.T) {
	b := New()
	b.Section("main").Switch("prompt_value", func(s *SwitchBlock) {
		s.Case("2", func(b *Block) { b.Transfer("support") })
		s.Case("1", func(b *Block) { b.Transfer("sales") })
		s.Default(func(b *Block) {
			b.Say("Sorry").Goto("menu")
		})
	})

	out, err := b.Build().ToJSON()
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, `"2": [`), strings.Index(out, `"1": [`))
	assert.JSONEq(t, `{"sections":{"main":[{"switch":{
		"variable":"prompt_value",
		"case":{"2":[{"transfer":{"dest":"support"}}],"1":[{"transfer":{"dest":"sales"}}]},
		"default":[{"play":{"url":"say:Sorry"}},{"goto":{"label":"menu"}}]
	}}]}}`, out)
}

func TestBlock_SwitchWithoutDefault(t *testing.T) {
	b := New()
	b.Section("main").Switch("x", nil)

	out, err := b.Build().ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"sections":{"main":[{"switch":{"variable":"x"}}]}}`, out)
}

func TestBlock_Shortcuts(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*Block)
		want  string
	}{
		{"hangup with reason", func(b *Block) { b.HangupWith(domain.ReasonBusy) }, `{"hangup":{"reason":"busy"}}`},
		{"play many", func(b *Block) { b.Play("a.wav", "b.wav") }, `{"play":{"urls":["a.wav","b.wav"]}}`},
		{"record call", func(b *Block) { b.RecordCall("rec-1") }, `{"record_call":{"control_id":"rec-1"}}`},
		{"record call default id", func(b *Block) { b.RecordCall("") }, `{"record_call":{}}`},
		{"stop record call", func(b *Block) { b.StopRecordCall("rec-1") }, `{"stop_record_call":{"control_id":"rec-1"}}`},
		{"stop record call bare", func(b *Block) { b.StopRecordCall("") }, `"stop_record_call"`},
		{"tap", func(b *Block) { b.Tap("wss://tap.example.com", "") }, `{"tap":{"uri":"wss://tap.example.com"}}`},
		{"stop tap", func(b *Block) { b.StopTap("t1") }, `{"stop_tap":{"control_id":"t1"}}`},
		{"denoise", func(b *Block) { b.Denoise() }, `"denoise"`},
		{"stop denoise", func(b *Block) { b.StopDenoise() }, `"stop_denoise"`},
		{"receive fax", func(b *Block) { b.ReceiveFax() }, `"receive_fax"`},
		{"send fax", func(b *Block) { b.SendFax("https://example.com/doc.pdf") }, `{"send_fax":{"document":"https://example.com/doc.pdf"}}`},
		{"send digits", func(b *Block) { b.SendDigits("123#") }, `{"send_digits":{"digits":"123#"}}`},
		{"send sms", func(b *Block) { b.SendSMS("+1", "+2", "hi") }, `{"send_sms":{"to_number":"+1","from_number":"+2","body":"hi"}}`},
		{"sip refer", func(b *Block) { b.SIPRefer("sip:a@example.com") }, `{"sip_refer":{"to_uri":"sip:a@example.com"}}`},
		{"join room", func(b *Block) { b.JoinRoom("standup") }, `{"join_room":{"name":"standup"}}`},
		{"return bare", func(b *Block) { b.Return(nil) }, `"return"`},
		{"return value", func(b *Block) { b.Return(domain.Map{"ok": true}) }, `{"return":{"ok":true}}`},
		{"set", func(b *Block) { b.Set(domain.Map{"n": 1}) }, `{"set":{"n":1}}`},
		{"unset one", func(b *Block) { b.Unset("n") }, `{"unset":{"vars":"n"}}`},
		{"unset many", func(b *Block) { b.Unset("n", "m") }, `{"unset":{"vars":["n","m"]}}`},
		{"goto", func(b *Block) { b.Goto("top") }, `{"goto":{"label":"top"}}`},
		{"connect", func(b *Block) { b.Connect(domain.Connect{To: domain.Ptr("+1")}) }, `{"connect":{"to":"+1"}}`},
		{"request", func(b *Block) {
			b.Request(domain.Request{URL: "https://example.com", Method: domain.MethodGet})
		}, `{"request":{"url":"https://example.com","method":"GET"}}`},
		{"prompt", func(b *Block) {
			b.Prompt(domain.Prompt{Play: domain.StringOrList{"say:Hi"}})
		}, `{"prompt":{"play":"say:Hi"}}`},
		{"record", func(b *Block) { b.Record(domain.Record{Beep: domain.Ptr(true)}) }, `{"record":{"beep":true}}`},
		{"ai", func(b *Block) { b.AI(domain.AI{Hints: []string{"x"}}) }, `{"ai":{"hints":["x"]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			tt.apply(b.Section("main"))

			out, err := b.Build().ToJSON()
			require.NoError(t, err)
			assert.JSONEq(t, `{"sections":{"main":[`+tt.want+`]}}`, out)
		})
	}
}

func TestBranch(t *testing.T) {
	assert.Equal(t, []domain.Instruction{}, Branch(nil))

	list := Branch(func(b *Block) { b.Answer().Hangup() })
	assert.Equal(t, []domain.Instruction{domain.ShortAnswer, domain.ShortHangup}, list)
}

func TestBuiltDocumentValidates(t *testing.T) {
	b := New()
	id := NewControlID()
	b.Section("main").
		Answer().
		RecordCall(id).
		Say("This call is recorded").
		StopRecordCall(id).
		Hangup()

	assert.NoError(t, b.Build().Validate())
}

func TestNewControlID(t *testing.T) {
	id := NewControlID()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, NewControlID())
}
