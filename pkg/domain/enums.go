package domain

import "slices"

// RequestMethod is the HTTP method of a request or SWAIG webhook.
type RequestMethod string

const (
	MethodGet    RequestMethod = "GET"
	MethodPost   RequestMethod = "POST"
	MethodPut    RequestMethod = "PUT"
	MethodDelete RequestMethod = "DELETE"
)

// RequestMethods lists the accepted request methods.
func RequestMethods() []RequestMethod {
	return []RequestMethod{MethodGet, MethodPost, MethodPut, MethodDelete}
}

func (m RequestMethod) Valid() bool { return slices.Contains(RequestMethods(), m) }

// HangupReason is reported to the far end when hanging up.
type HangupReason string

const (
	ReasonHangup  HangupReason = "hangup"
	ReasonBusy    HangupReason = "busy"
	ReasonDecline HangupReason = "decline"
)

// HangupReasons lists the accepted hangup reasons.
func HangupReasons() []HangupReason {
	return []HangupReason{ReasonHangup, ReasonBusy, ReasonDecline}
}

func (r HangupReason) Valid() bool { return slices.Contains(HangupReasons(), r) }

// RecordFormat is the audio container of a recording.
type RecordFormat string

const (
	FormatWAV RecordFormat = "wav"
	FormatMP3 RecordFormat = "mp3"
)

// RecordFormats lists the accepted recording formats.
func RecordFormats() []RecordFormat {
	return []RecordFormat{FormatWAV, FormatMP3}
}

func (f RecordFormat) Valid() bool { return slices.Contains(RecordFormats(), f) }

// RecordDirection selects which leg the record instruction captures.
type RecordDirection string

const (
	RecordSpeak  RecordDirection = "speak"
	RecordListen RecordDirection = "listen"
)

// RecordDirections lists the accepted record directions.
func RecordDirections() []RecordDirection {
	return []RecordDirection{RecordSpeak, RecordListen}
}

func (d RecordDirection) Valid() bool { return slices.Contains(RecordDirections(), d) }

// RecordCallDirection selects which legs record_call captures.
type RecordCallDirection string

const (
	RecordCallSpeak  RecordCallDirection = "speak"
	RecordCallListen RecordCallDirection = "listen"
	RecordCallBoth   RecordCallDirection = "both"
)

// RecordCallDirections lists the accepted record_call directions.
func RecordCallDirections() []RecordCallDirection {
	return []RecordCallDirection{RecordCallSpeak, RecordCallListen, RecordCallBoth}
}

func (d RecordCallDirection) Valid() bool { return slices.Contains(RecordCallDirections(), d) }

// TapDirection selects which audio a tap streams.
type TapDirection string

const (
	TapSpeak TapDirection = "speak"
	TapHear  TapDirection = "hear"
	TapBoth  TapDirection = "both"
)

// TapDirections lists the accepted tap directions.
func TapDirections() []TapDirection {
	return []TapDirection{TapSpeak, TapHear, TapBoth}
}

func (d TapDirection) Valid() bool { return slices.Contains(TapDirections(), d) }

// AIDirection tells the agent whether it placed or received the call.
type AIDirection string

const (
	AIInbound  AIDirection = "inbound"
	AIOutbound AIDirection = "outbound"
)

// AIDirections lists the accepted agent directions.
func AIDirections() []AIDirection {
	return []AIDirection{AIInbound, AIOutbound}
}

func (d AIDirection) Valid() bool { return slices.Contains(AIDirections(), d) }
