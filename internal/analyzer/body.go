package analyzer

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// ParseTemplate reads an owning-template .hcl file and returns every
// expression it contains, ready for ReferencedAttrs. The template is never
// evaluated here; only its references matter.
func ParseTemplate(path string) ([]hcl.Expression, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse template file %s: %w", path, diags)
	}
	return BodyExpressions(file.Body), nil
}

// BodyExpressions collects the attribute expressions of a body and all its
// nested blocks. Collection order is not significant; ReferencedAttrs
// dedupes and sorts whatever it is given.
func BodyExpressions(body hcl.Body) []hcl.Expression {
	syntaxBody, ok := body.(*hclsyntax.Body)
	if !ok {
		return nil
	}

	var exprs []hcl.Expression
	for _, attr := range syntaxBody.Attributes {
		exprs = append(exprs, attr.Expr)
	}
	for _, block := range syntaxBody.Blocks {
		exprs = append(exprs, BodyExpressions(block.Body)...)
	}
	return exprs
}
