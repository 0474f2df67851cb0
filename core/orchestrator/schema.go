package orchestrator

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	tverrors "tech-verdict/internal/errors"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

var (
	constraintAnalysisSchema = mustCompileSchema("constraint_analysis.schema.json")
	optionMatrixSchema       = mustCompileSchema("option_matrix.schema.json")
)

func mustCompileSchema(name string) *jsonschema.Schema {
	raw, err := schemaFS.ReadFile("schemas/" + name)
	if err != nil {
		panic(fmt.Sprintf("failed to read embedded %s: %v", name, err))
	}
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(string(raw)))
	if err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("failed to add %s resource: %v", name, err))
	}
	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s: %v", name, err))
	}
	return sch
}

// stripFences removes a surrounding markdown code fence, if any
func stripFences(reply string) string {
	s := strings.TrimSpace(reply)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		// drop the language tag line
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// decodeReply validates an AI reply against schema and decodes it into out
func decodeReply(reply string, schema *jsonschema.Schema, out interface{}) error {
	body := stripFences(reply)

	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(body))
	if err != nil {
		return tverrors.Wrap(tverrors.TypeProvider, "reply is not JSON", err)
	}
	if err := schema.Validate(inst); err != nil {
		return tverrors.Wrap(tverrors.TypeProvider, "reply does not match schema", err)
	}
	if err := json.Unmarshal([]byte(body), out); err != nil {
		return tverrors.Wrap(tverrors.TypeProvider, "decoding reply", err)
	}
	return nil
}
