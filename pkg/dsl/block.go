package dsl

import (
	"github.com/aretw0/swml"
	"github.com/aretw0/swml/pkg/domain"
)

// Block provides a fluent API for appending instructions to a section.
type Block struct {
	section *swml.Section
}

// Section returns the underlying section.
func (b *Block) Section() *swml.Section { return b.section }

// Do appends any instruction.
func (b *Block) Do(i domain.Instruction) *Block {
	b.section.Append(i)
	return b
}

// Answer picks up the call.
func (b *Block) Answer() *Block { return b.Do(domain.ShortAnswer) }

// Hangup ends the call.
func (b *Block) Hangup() *Block { return b.Do(domain.ShortHangup) }

// HangupWith ends the call reporting reason to the far end.
func (b *Block) HangupWith(reason domain.HangupReason) *Block {
	return b.Do(domain.Hangup{Reason: &reason})
}

// Play plays one or more audio URLs. A single URL uses the url field.
func (b *Block) Play(urls ...string) *Block {
	if len(urls) == 1 {
		return b.Do(domain.Play{URL: &urls[0]})
	}
	return b.Do(domain.Play{URLs: urls})
}

// Say speaks text with the default voice.
func (b *Block) Say(text string) *Block {
	return b.Play("say:" + text)
}

// Prompt collects digits or speech.
func (b *Block) Prompt(p domain.Prompt) *Block { return b.Do(p) }

// Record records the caller in the foreground.
func (b *Block) Record(r domain.Record) *Block { return b.Do(r) }

// RecordCall starts a background recording identified by controlID.
// An empty controlID lets the runtime pick one.
func (b *Block) RecordCall(controlID string) *Block {
	rc := domain.RecordCall{}
	if controlID != "" {
		rc.ControlID = &controlID
	}
	return b.Do(rc)
}

// StopRecordCall stops the recording started with controlID, or the most
// recent one when controlID is empty.
func (b *Block) StopRecordCall(controlID string) *Block {
	if controlID == "" {
		return b.Do(domain.ShortStopRecordCall)
	}
	return b.Do(domain.StopRecordCall{ControlID: &controlID})
}

// Tap streams call audio to uri.
func (b *Block) Tap(uri, controlID string) *Block {
	t := domain.Tap{URI: uri}
	if controlID != "" {
		t.ControlID = &controlID
	}
	return b.Do(t)
}

// StopTap stops the tap started with controlID, or the most recent one.
func (b *Block) StopTap(controlID string) *Block {
	if controlID == "" {
		return b.Do(domain.ShortStopTap)
	}
	return b.Do(domain.StopTap{ControlID: &controlID})
}

func (b *Block) Denoise() *Block     { return b.Do(domain.ShortDenoise) }
func (b *Block) StopDenoise() *Block { return b.Do(domain.ShortStopDenoise) }
func (b *Block) ReceiveFax() *Block  { return b.Do(domain.ShortReceiveFax) }

// SendFax faxes the document at url.
func (b *Block) SendFax(url string) *Block {
	return b.Do(domain.SendFax{Document: url})
}

// SendDigits sends DTMF digits.
func (b *Block) SendDigits(digits string) *Block {
	return b.Do(domain.SendDigits{Digits: digits})
}

// SendSMS sends a text message.
func (b *Block) SendSMS(to, from, body string) *Block {
	return b.Do(domain.SendSMS{ToNumber: to, FromNumber: from, Body: &body})
}

// SIPRefer transfers a SIP call to uri.
func (b *Block) SIPRefer(uri string) *Block {
	return b.Do(domain.SIPRefer{ToURI: uri})
}

// JoinRoom joins the named video room.
func (b *Block) JoinRoom(name string) *Block {
	return b.Do(domain.JoinRoom{Name: name})
}

// Connect dials another party.
func (b *Block) Connect(c domain.Connect) *Block { return b.Do(c) }

// Request performs an HTTP request from the runtime.
func (b *Block) Request(r domain.Request) *Block { return b.Do(r) }

// AI hands the call to an AI agent.
func (b *Block) AI(ai domain.AI) *Block { return b.Do(ai) }

// Goto jumps to label in the current section.
func (b *Block) Goto(label string) *Block {
	return b.Do(domain.Goto{Label: label})
}

// Execute calls section dest as a subroutine.
func (b *Block) Execute(dest string, params domain.Map) *Block {
	return b.Do(domain.Execute{Dest: dest, Params: params})
}

// Transfer hands control to section or URL dest.
func (b *Block) Transfer(dest string) *Block {
	return b.Do(domain.Transfer{Dest: dest})
}

// Return leaves the current section. A nil value uses the bare form.
func (b *Block) Return(value any) *Block {
	if value == nil {
		return b.Do(domain.ShortReturn)
	}
	return b.Do(domain.Return{Value: value})
}

// Set assigns variables.
func (b *Block) Set(vars domain.Map) *Block {
	return b.Do(domain.Set{Vars: vars})
}

// Unset removes variables.
func (b *Block) Unset(vars ...string) *Block {
	return b.Do(domain.Unset{Vars: vars})
}

// Cond appends a conditional. Nil branches render as empty lists.
func (b *Block) Cond(when string, then, otherwise func(*Block)) *Block {
	return b.Do(domain.Cond{When: when, Then: Branch(then), Else: Branch(otherwise)})
}

// Switch appends a switch on variable whose cases are declared by fn.
func (b *Block) Switch(variable string, fn func(*SwitchBlock)) *Block {
	sw := &SwitchBlock{s: domain.Switch{Variable: variable}}
	if fn != nil {
		fn(sw)
	}
	return b.Do(sw.s)
}

// SwitchBlock declares the cases of a switch.
type SwitchBlock struct {
	s domain.Switch
}

// Case adds a labelled branch. Cases render in declaration order.
func (s *SwitchBlock) Case(label string, fn func(*Block)) *SwitchBlock {
	s.s.Cases = append(s.s.Cases, domain.Case{Label: label, Actions: Branch(fn)})
	return s
}

// Default sets the branch taken when no case matches.
func (s *SwitchBlock) Default(fn func(*Block)) *SwitchBlock {
	s.s.Default = Branch(fn)
	return s
}
