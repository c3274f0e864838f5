package parser

// elementRule describes the grammar of one element kind: the attributes it
// must carry and the child tags it may contain. Documentation elements in
// the telepathy and doc namespaces are permitted everywhere and are handled
// outside the table.
type elementRule struct {
	Required []string
	Children map[string]bool
}

// grammar is the fixed, case-sensitive introspection vocabulary.
var grammar = map[string]elementRule{
	"node":       {Children: tags("interface", "node")},
	"interface":  {Required: []string{"name"}, Children: tags("method", "signal", "property", "annotation")},
	"method":     {Required: []string{"name"}, Children: tags("arg", "annotation")},
	"signal":     {Required: []string{"name"}, Children: tags("arg", "annotation")},
	"property":   {Required: []string{"name", "type", "access"}, Children: tags("annotation")},
	"arg":        {Required: []string{"type"}, Children: tags("annotation")},
	"annotation": {Required: []string{"name", "value"}, Children: tags()},
}

func tags(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}
