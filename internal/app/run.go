package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/chainstack/internal/analyzer"
	"github.com/vk/chainstack/internal/attrs"
	"github.com/vk/chainstack/internal/chain"
	"github.com/vk/chainstack/internal/ctxlog"
	"github.com/vk/chainstack/internal/outputs"
	"gopkg.in/yaml.v3"
)

// Run synthesizes a nested template for every declared chain and writes
// the documents to the configured output, in declaration order. Output
// definitions are projected from the owning template's analyzed
// references, merged with any explicitly requested keys.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	requested := make([]attrs.Ref, 0, len(a.cfg.Project))
	for _, raw := range a.cfg.Project {
		requested = append(requested, attrs.ParseRef(raw))
	}

	var templateExprs []hcl.Expression
	if a.cfg.TemplatePath != "" {
		exprs, err := analyzer.ParseTemplate(a.cfg.TemplatePath)
		if err != nil {
			return fmt.Errorf("analyzing owning template: %w", err)
		}
		templateExprs = exprs
		a.logger.Debug("Owning template analyzed.", "expressions", len(exprs))
	}

	enc := yaml.NewEncoder(a.outW)
	defer enc.Close()

	for _, name := range a.model.Order {
		spec := a.model.Chains[name]

		referenced := requested
		if templateExprs != nil {
			referenced = mergeRefs(analyzer.ReferencedAttrs(templateExprs, name), requested)
		}

		tmpl := chain.Assemble(chain.Synthesize(spec))
		for _, def := range outputs.Project(referenced, tmpl.Slots()) {
			tmpl.AddOutput(def)
		}
		a.logger.Info("Synthesized nested template.",
			"chain", name, "children", tmpl.Len(), "outputs", len(tmpl.Outputs()))

		if err := enc.Encode(tmpl); err != nil {
			return fmt.Errorf("encoding template for chain %q: %w", name, err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// mergeRefs combines analyzed and explicitly requested references,
// dropping duplicates. Analyzed references come first so the owning
// template's order wins when both name the same attribute.
func mergeRefs(analyzed, requested []attrs.Ref) []attrs.Ref {
	seen := make(map[string]struct{}, len(analyzed)+len(requested))
	merged := make([]attrs.Ref, 0, len(analyzed)+len(requested))
	for _, ref := range append(analyzed, requested...) {
		key := ref.Key + "\x00" + strings.Join(ref.Path, "\x00")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, ref)
	}
	return merged
}
