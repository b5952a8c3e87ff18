package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/swml/pkg/codec"
	"github.com/aretw0/swml/pkg/domain"
)

func decode(t *testing.T, src string) any {
	t.Helper()
	tree, err := codec.Decode([]byte(src), codec.YAML)
	require.NoError(t, err)
	return tree
}

func errorKeys(err error) []string {
	var keys []string
	for _, e := range ValidationErrors(err) {
		var ve *ValidationError
		if errors.As(e, &ve) {
			keys = append(keys, ve.Key)
		}
	}
	return keys
}

func TestValidateDocument_Valid(t *testing.T) {
	tree := decode(t, `
version: 1.0.0
sections:
  main:
    - answer
    - play:
        url: say:Hello
        volume: -4
    - prompt:
        play: say:Press one
        max_digits: 1
        result:
          switch:
            variable: prompt_value
            case:
              "1":
                - transfer:
                    dest: sales
            default:
              - hangup
    - cond:
        when: vars.ok
        then: []
        else:
          - return
    - request:
        url: https://example.com
        method: POST
        body:
          a: 1
        result:
          - cond:
              when: "true"
              then: []
    - record_call:
        control_id: abc
        direction: both
    - receive_fax:
        anything: goes
    - set:
        counter: 1
    - unset:
        vars: [a, b]
    - return:
        status: done
  sales:
    - connect:
        to: "+15550100"
        timeout: 30
`)
	assert.NoError(t, ValidateDocument(tree))
}

func TestValidateDocument_Errors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantKeys []string
	}{
		{
			name:     "missing sections",
			src:      `version: "1"`,
			wantKeys: []string{"sections"},
		},
		{
			name:     "unknown top-level key",
			src:      "sections: {}\nextra: 1",
			wantKeys: []string{"extra"},
		},
		{
			name:     "wrong field type",
			src:      "sections:\n  main:\n    - play:\n        volume: loud",
			wantKeys: []string{"sections.main[0].play.volume"},
		},
		{
			name:     "unknown verb",
			src:      "sections:\n  main:\n    - dance: {}",
			wantKeys: []string{"sections.main[0].dance"},
		},
		{
			name:     "unknown field",
			src:      "sections:\n  main:\n    - answer:\n        max_duraton: 5",
			wantKeys: []string{"sections.main[0].answer.max_duraton"},
		},
		{
			name:     "missing required field",
			src:      "sections:\n  main:\n    - send_digits: {}",
			wantKeys: []string{"sections.main[0].send_digits.digits"},
		},
		{
			name:     "bad enum",
			src:      "sections:\n  main:\n    - hangup:\n        reason: tired",
			wantKeys: []string{"sections.main[0].hangup.reason"},
		},
		{
			name:     "nested branch error",
			src:      "sections:\n  main:\n    - cond:\n        when: x\n        then:\n          - goto: {}",
			wantKeys: []string{"sections.main[0].cond.then[0].goto.label"},
		},
		{
			name:     "result must be a branch",
			src:      "sections:\n  main:\n    - sip_refer:\n        to_uri: sip:a@b\n        result:\n          play:\n            url: x",
			wantKeys: []string{"sections.main[0].sip_refer.result.play"},
		},
		{
			name:     "shorthand without bare form",
			src:      "sections:\n  main:\n    - play",
			wantKeys: []string{"sections.main[0]"},
		},
		{
			name:     "two keys in one instruction",
			src:      "sections:\n  main:\n    - answer: {}\n      hangup: {}",
			wantKeys: []string{"sections.main[0]"},
		},
		{
			name:     "section is not a list",
			src:      "sections:\n  main: answer",
			wantKeys: []string{"sections.main"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(decode(t, tt.src))
			require.Error(t, err)
			assert.Equal(t, tt.wantKeys, errorKeys(err))
		})
	}
}

func TestValidateDocument_EmptySectionName(t *testing.T) {
	err := ValidateDocument(map[string]any{
		"sections": map[string]any{"": []any{"answer"}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptySectionName)
}

func TestValidateDocument_NotAMapping(t *testing.T) {
	assert.Error(t, ValidateDocument([]any{"answer"}))
	assert.Error(t, ValidateDocument(nil))
}

func TestValidateDocument_AIAgent(t *testing.T) {
	tree := decode(t, `
sections:
  main:
    - ai:
        prompt:
          text: You are a helpful agent.
          temperature: 0.3
        params:
          direction: inbound
          some_future_param: true
        SWAIG:
          defaults:
            web_hook_url: https://hooks.example.com
          functions:
            - function: get_weather
              purpose: look up the weather
              argument:
                type: object
                properties:
                  city:
                    type: string
              data_map:
                - webhooks:
                    url: https://api.example.com/weather
                    method: GET
                    output:
                      response: It is sunny
                      action:
                        - hangup
        languages:
          - name: English
            code: en-US
`)
	assert.NoError(t, ValidateDocument(tree))
}

func TestCatalogueCoversEveryVerb(t *testing.T) {
	cat := Catalogue()
	for _, verb := range domain.Verbs() {
		assert.Contains(t, cat, verb)
	}
	assert.Len(t, cat, len(domain.Verbs()))

	delete(cat, domain.VerbAnswer)
	assert.Contains(t, Catalogue(), domain.VerbAnswer, "Catalogue must return a copy")
}

func TestShorthandAllowed(t *testing.T) {
	assert.True(t, ShorthandAllowed(domain.VerbAnswer))
	assert.True(t, ShorthandAllowed(domain.VerbReturn))
	assert.False(t, ShorthandAllowed(domain.VerbPlay))
}

func TestDescribe(t *testing.T) {
	infos := Describe()
	require.Len(t, infos, len(domain.Verbs()))

	byVerb := map[domain.Verb]VerbInfo{}
	for _, info := range infos {
		byVerb[info.Verb] = info
	}

	digits := byVerb[domain.VerbSendDigits]
	require.Len(t, digits.Fields, 1)
	assert.Equal(t, FieldInfo{Name: "digits", Type: "string", Required: true}, digits.Fields[0])

	assert.True(t, byVerb[domain.VerbDenoise].Open)
	assert.True(t, byVerb[domain.VerbHangup].Shorthand)
	assert.Equal(t, "any", byVerb[domain.VerbReturn].Type)
}
