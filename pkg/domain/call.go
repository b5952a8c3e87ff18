package domain

// Answer picks up an incoming call. Use ShortAnswer for the defaults.
type Answer struct {
	MaxDuration *int `json:"max_duration,omitempty" yaml:"max_duration,omitempty"`
}

func (Answer) Verb() Verb    { return VerbAnswer }
func (Answer) instruction() {}

func (a Answer) MarshalJSON() ([]byte, error) {
	type body Answer
	return encodeJSON(tagged(VerbAnswer, body(a)))
}

func (a Answer) MarshalYAML() (any, error) {
	type body Answer
	return tagged(VerbAnswer, body(a)), nil
}

// Hangup ends the call. Use ShortHangup for the defaults.
type Hangup struct {
	Reason *HangupReason `json:"reason,omitempty" yaml:"reason,omitempty"`
}

func (Hangup) Verb() Verb    { return VerbHangup }
func (Hangup) instruction() {}

func (h Hangup) MarshalJSON() ([]byte, error) {
	type body Hangup
	return encodeJSON(tagged(VerbHangup, body(h)))
}

func (h Hangup) MarshalYAML() (any, error) {
	type body Hangup
	return tagged(VerbHangup, body(h)), nil
}

// Connect dials another endpoint and bridges it with the call.
type Connect struct {
	To              *string      `json:"to,omitempty" yaml:"to,omitempty"`
	From            *string      `json:"from,omitempty" yaml:"from,omitempty"`
	Headers         Map          `json:"headers,omitzero" yaml:"headers,omitempty"`
	Codecs          *string      `json:"codecs,omitempty" yaml:"codecs,omitempty"`
	WebRTCMedia     *bool        `json:"webrtc_media,omitempty" yaml:"webrtc_media,omitempty"`
	SessionTimeout  *int         `json:"session_timeout,omitempty" yaml:"session_timeout,omitempty"`
	Ringback        List[string] `json:"ringback,omitzero" yaml:"ringback,omitempty"`
	Timeout         *int         `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	MaxDuration     *int         `json:"max_duration,omitempty" yaml:"max_duration,omitempty"`
	AnswerOnBridge  *bool        `json:"answer_on_bridge,omitempty" yaml:"answer_on_bridge,omitempty"`
	CallStateURL    *string      `json:"call_state_url,omitempty" yaml:"call_state_url,omitempty"`
	CallStateEvents List[string] `json:"call_state_events,omitzero" yaml:"call_state_events,omitempty"`
	Result          *Result      `json:"result,omitempty" yaml:"result,omitempty"`
}

func (Connect) Verb() Verb    { return VerbConnect }
func (Connect) instruction() {}

func (c Connect) MarshalJSON() ([]byte, error) {
	type body Connect
	return encodeJSON(tagged(VerbConnect, body(c)))
}

func (c Connect) MarshalYAML() (any, error) {
	type body Connect
	return tagged(VerbConnect, body(c)), nil
}

// Play plays audio files or "say:" text-to-speech URLs.
type Play struct {
	URL         *string      `json:"url,omitempty" yaml:"url,omitempty"`
	URLs        List[string] `json:"urls,omitzero" yaml:"urls,omitempty"`
	Volume      *float64     `json:"volume,omitempty" yaml:"volume,omitempty"`
	SayVoice    *string      `json:"say_voice,omitempty" yaml:"say_voice,omitempty"`
	SayLanguage *string      `json:"say_language,omitempty" yaml:"say_language,omitempty"`
	SayGender   *string      `json:"say_gender,omitempty" yaml:"say_gender,omitempty"`
}

func (Play) Verb() Verb    { return VerbPlay }
func (Play) instruction() {}

func (p Play) MarshalJSON() ([]byte, error) {
	type body Play
	return encodeJSON(tagged(VerbPlay, body(p)))
}

func (p Play) MarshalYAML() (any, error) {
	type body Play
	return tagged(VerbPlay, body(p)), nil
}

// Prompt plays media and collects digits or speech from the caller.
type Prompt struct {
	Play             StringOrList `json:"play" yaml:"play"`
	Volume           *float64     `json:"volume,omitempty" yaml:"volume,omitempty"`
	SayVoice         *string      `json:"say_voice,omitempty" yaml:"say_voice,omitempty"`
	SayLanguage      *string      `json:"say_language,omitempty" yaml:"say_language,omitempty"`
	SayGender        *string      `json:"say_gender,omitempty" yaml:"say_gender,omitempty"`
	MaxDigits        *int         `json:"max_digits,omitempty" yaml:"max_digits,omitempty"`
	Terminators      *string      `json:"terminators,omitempty" yaml:"terminators,omitempty"`
	DigitTimeout     *float64     `json:"digit_timeout,omitempty" yaml:"digit_timeout,omitempty"`
	InitialTimeout   *float64     `json:"initial_timeout,omitempty" yaml:"initial_timeout,omitempty"`
	SpeechTimeout    *float64     `json:"speech_timeout,omitempty" yaml:"speech_timeout,omitempty"`
	SpeechEndTimeout *float64     `json:"speech_end_timeout,omitempty" yaml:"speech_end_timeout,omitempty"`
	SpeechLanguage   *string      `json:"speech_language,omitempty" yaml:"speech_language,omitempty"`
	SpeechHints      List[string] `json:"speech_hints,omitzero" yaml:"speech_hints,omitempty"`
	Result           *Result      `json:"result,omitempty" yaml:"result,omitempty"`
}

func (Prompt) Verb() Verb    { return VerbPrompt }
func (Prompt) instruction() {}

func (p Prompt) MarshalJSON() ([]byte, error) {
	type body Prompt
	return encodeJSON(tagged(VerbPrompt, body(p)))
}

func (p Prompt) MarshalYAML() (any, error) {
	type body Prompt
	return tagged(VerbPrompt, body(p)), nil
}

// Record records the caller in the foreground. Use ShortRecord for the
// defaults.
type Record struct {
	Stereo            *bool            `json:"stereo,omitempty" yaml:"stereo,omitempty"`
	Format            *RecordFormat    `json:"format,omitempty" yaml:"format,omitempty"`
	Direction         *RecordDirection `json:"direction,omitempty" yaml:"direction,omitempty"`
	Terminators       *string          `json:"terminators,omitempty" yaml:"terminators,omitempty"`
	Beep              *bool            `json:"beep,omitempty" yaml:"beep,omitempty"`
	InputSensitivity  *float64         `json:"input_sensitivity,omitempty" yaml:"input_sensitivity,omitempty"`
	InitialTimeout    *float64         `json:"initial_timeout,omitempty" yaml:"initial_timeout,omitempty"`
	EndSilenceTimeout *float64         `json:"end_silence_timeout,omitempty" yaml:"end_silence_timeout,omitempty"`
}

func (Record) Verb() Verb    { return VerbRecord }
func (Record) instruction() {}

func (r Record) MarshalJSON() ([]byte, error) {
	type body Record
	return encodeJSON(tagged(VerbRecord, body(r)))
}

func (r Record) MarshalYAML() (any, error) {
	type body Record
	return tagged(VerbRecord, body(r)), nil
}

// RecordCall starts a background recording identified by ControlID.
type RecordCall struct {
	ControlID         *string              `json:"control_id,omitempty" yaml:"control_id,omitempty"`
	Stereo            *bool                `json:"stereo,omitempty" yaml:"stereo,omitempty"`
	Format            *RecordFormat        `json:"format,omitempty" yaml:"format,omitempty"`
	Direction         *RecordCallDirection `json:"direction,omitempty" yaml:"direction,omitempty"`
	Terminators       *string              `json:"terminators,omitempty" yaml:"terminators,omitempty"`
	Beep              *bool                `json:"beep,omitempty" yaml:"beep,omitempty"`
	InputSensitivity  *float64             `json:"input_sensitivity,omitempty" yaml:"input_sensitivity,omitempty"`
	InitialTimeout    *float64             `json:"initial_timeout,omitempty" yaml:"initial_timeout,omitempty"`
	EndSilenceTimeout *float64             `json:"end_silence_timeout,omitempty" yaml:"end_silence_timeout,omitempty"`
}

func (RecordCall) Verb() Verb    { return VerbRecordCall }
func (RecordCall) instruction() {}

func (r RecordCall) MarshalJSON() ([]byte, error) {
	type body RecordCall
	return encodeJSON(tagged(VerbRecordCall, body(r)))
}

func (r RecordCall) MarshalYAML() (any, error) {
	type body RecordCall
	return tagged(VerbRecordCall, body(r)), nil
}

// StopRecordCall stops a background recording. Without ControlID the most
// recent one is stopped.
type StopRecordCall struct {
	ControlID *string `json:"control_id,omitempty" yaml:"control_id,omitempty"`
}

func (StopRecordCall) Verb() Verb    { return VerbStopRecordCall }
func (StopRecordCall) instruction() {}

func (s StopRecordCall) MarshalJSON() ([]byte, error) {
	type body StopRecordCall
	return encodeJSON(tagged(VerbStopRecordCall, body(s)))
}

func (s StopRecordCall) MarshalYAML() (any, error) {
	type body StopRecordCall
	return tagged(VerbStopRecordCall, body(s)), nil
}

// SendDigits sends DTMF digits.
type SendDigits struct {
	Digits string `json:"digits" yaml:"digits"`
}

func (SendDigits) Verb() Verb    { return VerbSendDigits }
func (SendDigits) instruction() {}

func (s SendDigits) MarshalJSON() ([]byte, error) {
	type body SendDigits
	return encodeJSON(tagged(VerbSendDigits, body(s)))
}

func (s SendDigits) MarshalYAML() (any, error) {
	type body SendDigits
	return tagged(VerbSendDigits, body(s)), nil
}

// SendFax transmits the PDF at Document.
type SendFax struct {
	Document   string  `json:"document" yaml:"document"`
	HeaderInfo *string `json:"header_info,omitempty" yaml:"header_info,omitempty"`
	Identity   *string `json:"identity,omitempty" yaml:"identity,omitempty"`
}

func (SendFax) Verb() Verb    { return VerbSendFax }
func (SendFax) instruction() {}

func (s SendFax) MarshalJSON() ([]byte, error) {
	type body SendFax
	return encodeJSON(tagged(VerbSendFax, body(s)))
}

func (s SendFax) MarshalYAML() (any, error) {
	type body SendFax
	return tagged(VerbSendFax, body(s)), nil
}

// ReceiveFax receives a fax. Options is passed through; use ShortReceiveFax
// for the defaults.
type ReceiveFax struct {
	Options Map
}

func (ReceiveFax) Verb() Verb    { return VerbReceiveFax }
func (ReceiveFax) instruction() {}

func (r ReceiveFax) MarshalJSON() ([]byte, error) {
	return encodeJSON(tagged(VerbReceiveFax, openBag(r.Options)))
}

func (r ReceiveFax) MarshalYAML() (any, error) {
	return tagged(VerbReceiveFax, openBag(r.Options)), nil
}

// SendSMS sends a text or media message.
type SendSMS struct {
	ToNumber   string       `json:"to_number" yaml:"to_number"`
	FromNumber string       `json:"from_number" yaml:"from_number"`
	Body       *string      `json:"body,omitempty" yaml:"body,omitempty"`
	Media      List[string] `json:"media,omitzero" yaml:"media,omitempty"`
	Region     *string      `json:"region,omitempty" yaml:"region,omitempty"`
	Tags       List[string] `json:"tags,omitzero" yaml:"tags,omitempty"`
}

func (SendSMS) Verb() Verb    { return VerbSendSMS }
func (SendSMS) instruction() {}

func (s SendSMS) MarshalJSON() ([]byte, error) {
	type body SendSMS
	return encodeJSON(tagged(VerbSendSMS, body(s)))
}

func (s SendSMS) MarshalYAML() (any, error) {
	type body SendSMS
	return tagged(VerbSendSMS, body(s)), nil
}

// SIPRefer transfers a SIP call with a REFER to ToURI.
type SIPRefer struct {
	ToURI  string  `json:"to_uri" yaml:"to_uri"`
	Result *Result `json:"result,omitempty" yaml:"result,omitempty"`
}

func (SIPRefer) Verb() Verb    { return VerbSIPRefer }
func (SIPRefer) instruction() {}

func (s SIPRefer) MarshalJSON() ([]byte, error) {
	type body SIPRefer
	return encodeJSON(tagged(VerbSIPRefer, body(s)))
}

func (s SIPRefer) MarshalYAML() (any, error) {
	type body SIPRefer
	return tagged(VerbSIPRefer, body(s)), nil
}

// Tap streams call audio to URI (rtp://, ws:// or wss://).
type Tap struct {
	URI       string        `json:"uri" yaml:"uri"`
	ControlID *string       `json:"control_id,omitempty" yaml:"control_id,omitempty"`
	Direction *TapDirection `json:"direction,omitempty" yaml:"direction,omitempty"`
	Codec     *string       `json:"codec,omitempty" yaml:"codec,omitempty"`
	RTPPtime  *int          `json:"rtp_ptime,omitempty" yaml:"rtp_ptime,omitempty"`
}

func (Tap) Verb() Verb    { return VerbTap }
func (Tap) instruction() {}

func (t Tap) MarshalJSON() ([]byte, error) {
	type body Tap
	return encodeJSON(tagged(VerbTap, body(t)))
}

func (t Tap) MarshalYAML() (any, error) {
	type body Tap
	return tagged(VerbTap, body(t)), nil
}

// StopTap stops a tap. Without ControlID the most recent one is stopped.
type StopTap struct {
	ControlID *string `json:"control_id,omitempty" yaml:"control_id,omitempty"`
}

func (StopTap) Verb() Verb    { return VerbStopTap }
func (StopTap) instruction() {}

func (s StopTap) MarshalJSON() ([]byte, error) {
	type body StopTap
	return encodeJSON(tagged(VerbStopTap, body(s)))
}

func (s StopTap) MarshalYAML() (any, error) {
	type body StopTap
	return tagged(VerbStopTap, body(s)), nil
}

// Denoise starts noise reduction. Options is passed through.
type Denoise struct {
	Options Map
}

func (Denoise) Verb() Verb    { return VerbDenoise }
func (Denoise) instruction() {}

func (d Denoise) MarshalJSON() ([]byte, error) {
	return encodeJSON(tagged(VerbDenoise, openBag(d.Options)))
}

func (d Denoise) MarshalYAML() (any, error) {
	return tagged(VerbDenoise, openBag(d.Options)), nil
}

// StopDenoise stops noise reduction. Options is passed through.
type StopDenoise struct {
	Options Map
}

func (StopDenoise) Verb() Verb    { return VerbStopDenoise }
func (StopDenoise) instruction() {}

func (s StopDenoise) MarshalJSON() ([]byte, error) {
	return encodeJSON(tagged(VerbStopDenoise, openBag(s.Options)))
}

func (s StopDenoise) MarshalYAML() (any, error) {
	return tagged(VerbStopDenoise, openBag(s.Options)), nil
}

// JoinRoom joins the call to a video room.
type JoinRoom struct {
	Name string `json:"name" yaml:"name"`
}

func (JoinRoom) Verb() Verb    { return VerbJoinRoom }
func (JoinRoom) instruction() {}

func (j JoinRoom) MarshalJSON() ([]byte, error) {
	type body JoinRoom
	return encodeJSON(tagged(VerbJoinRoom, body(j)))
}

func (j JoinRoom) MarshalYAML() (any, error) {
	type body JoinRoom
	return tagged(VerbJoinRoom, body(j)), nil
}

func openBag(m Map) Map {
	if m == nil {
		return Map{}
	}
	return m
}
