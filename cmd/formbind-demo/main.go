// Command formbind-demo renders a sample registration form, its error
// summary, and the AJAX validation payload for the bound models. It exists
// to eyeball generated markup while iterating on configuration files.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-formbind/pkg/config"
	"github.com/goliatone/go-formbind/pkg/form"
	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/validate"
)

func main() {
	configPath := flag.String("config", "", "YAML form configuration (defaults if empty)")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	cfg := form.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	user := model.NewMapModel("User").
		Set("name", "").
		Set("email", "dev@example.com").
		AddRule("name", model.Required()).
		AddRule("email", model.Required())
	user.Validate()

	f := form.Begin("/users", "post", map[string]any{"id": "demo-form"},
		form.WithConfig(cfg),
		form.WithAjaxValidation("/users/validate"),
		form.WithHiddenFields(form.CSRFToken("_csrf", "demo-token")),
	)

	if err := f.WriteString(f.ErrorSummary([]model.Model{user}, form.SummaryOptions{})); err != nil {
		log.Fatalf("Failed to write summary: %v", err)
	}
	for _, attribute := range []string{"name", "email"} {
		if _, err := f.Field(user, attribute, nil); err != nil {
			log.Fatalf("Failed to render field %q: %v", attribute, err)
		}
	}

	// Nested begin/end pair with hand-written inner markup.
	if _, err := f.BeginField(user, "bio", nil); err != nil {
		log.Fatalf("Failed to begin field: %v", err)
	}
	if err := f.WriteString(`<textarea id="user-bio" name="User[bio]"></textarea>`); err != nil {
		log.Fatalf("Failed to write textarea: %v", err)
	}
	if _, err := f.EndField(); err != nil {
		log.Fatalf("Failed to end field: %v", err)
	}

	markup, err := f.End()
	if err != nil {
		log.Fatalf("Failed to render form: %v", err)
	}

	payload, err := json.MarshalIndent(validate.Validate(user), "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode error map: %v", err)
	}

	out := markup + "\n\n" + string(payload) + "\n"
	if *output != "" {
		if err := os.WriteFile(*output, []byte(out), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Demo written to %s\n", *output)
		return
	}
	fmt.Println(out)
}
