package interpreter

import (
	"strings"

	"fortio.org/log"

	"objsh/shell-go/pkg/lexer"
	"objsh/shell-go/pkg/resource"
	"objsh/shell-go/pkg/runtime"
)

// run executes statements in order against env, which receives the
// assignments. A failed bare expression leaves no result and execution
// continues; a failed assignment abandons the remaining statements.
// Before each statement the session working directory is set from env's
// Current-Folder, so it always mirrors the environment being run.
func (i *Interpreter) run(src string, env *runtime.Environment) (runtime.Value, error) {
	var result runtime.Value
	for _, stmt := range lexer.SplitStatements(src) {
		i.applyCurrentFolder(env)

		name := strings.TrimSpace(stmt.Name)
		val, err := i.evaluate(stmt.Expr, env)
		if err != nil && !IsSoftFault(err) {
			return nil, err
		}

		if !stmt.Assign || name == "" {
			if err != nil {
				log.LogVf("statement %q: %v", strings.TrimSpace(stmt.Expr), err)
			}
			result = val
			continue
		}

		if err == nil && val == nil {
			err = softFault("expression produced no value")
		}
		if err != nil {
			log.LogVf("assignment to %s abandoned: %v", name, err)
			return nil, nil
		}
		env.Define(name, val)
		result = val
	}
	return result, nil
}

// runBlock runs a brace block on its own environment. The block may move the
// working directory through its Current-Folder binding; the enclosing
// directory is restored when it finishes, fault or not.
func (i *Interpreter) runBlock(src string, env *runtime.Environment) (runtime.Value, error) {
	saved := i.workDir
	defer func() { i.workDir = saved }()
	return i.run(src, env)
}

// applyCurrentFolder points the session at the directory bound to
// Current-Folder. Anything other than an existing Folder leaves the previous
// directory in effect.
func (i *Interpreter) applyCurrentFolder(env *runtime.Environment) {
	val, ok := env.Lookup(runtime.CurrentFolderKey)
	if !ok {
		return
	}
	folder, ok := val.(runtime.FolderValue)
	if !ok {
		log.LogVf("%s is a %s, keeping %s", runtime.CurrentFolderKey, val.Kind(), i.workDir)
		return
	}
	if !resource.IsDir(folder.Path) {
		log.LogVf("%s %s is not a directory, keeping %s", runtime.CurrentFolderKey, folder.Path, i.workDir)
		return
	}
	i.workDir = folder.Path
}
