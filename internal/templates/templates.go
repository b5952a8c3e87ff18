// Package templates holds the built-in documents served by the CLI, the
// HTTP adapter and the MCP server.
package templates

import (
	"context"
	"strconv"

	"github.com/aretw0/swml"
	"github.com/aretw0/swml/pkg/domain"
	"github.com/aretw0/swml/pkg/dsl"
	"github.com/aretw0/swml/pkg/registry"
	"github.com/aretw0/swml/pkg/schema"
)

// Register adds every built-in template to reg.
func Register(reg *registry.Registry) {
	reg.Register("hello", Hello,
		registry.WithDescription("Answers, greets the caller by name and hangs up. Params: name (optional)."))
	reg.Register("ivr", IVR,
		registry.WithDescription("Two-option menu routing to sales or support. Params: sales, support (phone numbers), retries (optional)."),
		registry.WithParams(schema.Schema{"sales": schema.String(), "support": schema.String()}))
	reg.Register("ai", Agent,
		registry.WithDescription("AI receptionist with a weather lookup function. Params: prompt, webhook (optional)."))
}

func param(params map[string]string, key, fallback string) string {
	if v, ok := params[key]; ok && v != "" {
		return v
	}
	return fallback
}

// Hello answers and greets the caller.
func Hello(_ context.Context, params map[string]string) (*swml.Document, error) {
	b := dsl.New()
	b.Section("main").
		Answer().
		Say("Hello " + param(params, "name", "there") + ", welcome to SWML.").
		Hangup()
	return b.Build(), nil
}

// IVR asks the caller to press 1 for sales or 2 for support, retrying a
// few times before giving up.
func IVR(_ context.Context, params map[string]string) (*swml.Document, error) {
	retries, err := strconv.Atoi(param(params, "retries", "3"))
	if err != nil || retries < 1 {
		retries = 3
	}

	b := dsl.New()
	b.Section("main").
		Answer().
		Execute("menu", nil).
		Hangup()

	b.Section("menu").
		Do(domain.Prompt{
			Play:        domain.StringOrList{"say:Press 1 for sales or 2 for support."},
			MaxDigits:   domain.Ptr(1),
			Terminators: domain.Ptr("#"),
			Result: domain.ResultOf(domain.Switch{
				Variable: "prompt_value",
				Cases: []domain.Case{
					{Label: "1", Actions: dsl.Branch(func(b *dsl.Block) { b.Execute("sales", nil) })},
					{Label: "2", Actions: dsl.Branch(func(b *dsl.Block) { b.Execute("support", nil) })},
				},
				Default: dsl.Branch(func(b *dsl.Block) {
					b.Say("Sorry, I did not get that.").
						Do(domain.Goto{Label: "menu", Max: domain.Ptr(retries)})
				}),
			}),
		})

	b.Section("sales").
		Say("Connecting you to sales.").
		Connect(domain.Connect{To: domain.Ptr(params["sales"]), Timeout: domain.Ptr(30)})

	b.Section("support").
		Say("Connecting you to support.").
		Connect(domain.Connect{To: domain.Ptr(params["support"]), Timeout: domain.Ptr(30)})

	return b.Build(), nil
}

// Agent hands the call to an AI receptionist.
func Agent(_ context.Context, params map[string]string) (*swml.Document, error) {
	prompt := param(params, "prompt",
		"You are a friendly receptionist. Answer questions about the weather and keep replies short.")
	webhook := param(params, "webhook", "https://api.example.com/weather")

	b := dsl.New()
	b.Section("main").
		Answer().
		AI(domain.AI{
			Prompt: &domain.AIPrompt{
				Text:        domain.Ptr(prompt),
				Temperature: domain.Ptr(0.3),
			},
			Params: &domain.AIParams{
				Direction:          domain.Ptr(domain.AIInbound),
				WaitForUser:        domain.Ptr(false),
				EndOfSpeechTimeout: domain.Ptr(500),
			},
			SWAIG: &domain.SWAIG{
				Functions: []domain.SWAIGFunction{{
					Function: "get_weather",
					Purpose:  "look up the current weather for a city",
					Argument: domain.FunctionArgument{
						Type: "object",
						Properties: domain.Map{
							"city": domain.Map{"type": "string", "description": "city name"},
						},
					},
					DataMap: []domain.DataMap{{
						Webhooks: &domain.WebhookConfig{
							URL:    webhook + "?city=${args.city}",
							Method: domain.MethodGet,
							Output: domain.WebhookOutput{
								Response: "The weather in ${args.city} is ${response.summary}.",
								Action: dsl.Branch(func(b *dsl.Block) {
									b.Set(domain.Map{"last_city": "${args.city}"})
								}),
							},
						},
					}},
				}},
			},
			Hints:     []string{"weather", "forecast"},
			Languages: []domain.AILanguage{{Name: "English", Code: "en-US"}},
		}).
		Hangup()
	return b.Build(), nil
}
