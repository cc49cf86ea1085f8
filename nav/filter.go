package nav

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ScriptFilter runs a tengo script per item. The script sees name, path and
// is_dir and sets keep; a script that never defines keep keeps everything.
type ScriptFilter struct {
	compiled *tengo.Compiled
}

func NewScriptFilter(src []byte) (*ScriptFilter, error) {
	script := tengo.NewScript(src)
	_ = script.Add("name", "")
	_ = script.Add("path", "")
	_ = script.Add("is_dir", false)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("nav: compile filter: %w", err)
	}
	return &ScriptFilter{compiled: compiled}, nil
}

func (f *ScriptFilter) Keep(item Item) (bool, error) {
	if f == nil || f.compiled == nil {
		return true, nil
	}
	if err := f.compiled.Set("name", item.Name); err != nil {
		return true, err
	}
	if err := f.compiled.Set("path", item.Path); err != nil {
		return true, err
	}
	if err := f.compiled.Set("is_dir", item.Dir); err != nil {
		return true, err
	}
	if err := f.compiled.Run(); err != nil {
		return true, fmt.Errorf("nav: run filter: %w", err)
	}
	if !f.compiled.IsDefined("keep") {
		return true, nil
	}
	return f.compiled.Get("keep").Bool(), nil
}
