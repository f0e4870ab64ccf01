package interpreter

import (
	"fortio.org/log"

	"objsh/shell-go/pkg/resource"
	"objsh/shell-go/pkg/runtime"
)

// Open, Rename and Delete are best effort: an OS error is traced and the
// call still yields no result without faulting. Rename moves the entry on
// disk; handles already bound to the old path keep it.

func (i *Interpreter) fileMember(file runtime.FileValue, method string, args []runtime.Value) (runtime.Value, error) {
	switch method {
	case "Read-String":
		text, err := resource.ReadString(file.Path)
		if err != nil {
			return nil, hardFault("read", file.Path, err)
		}
		return runtime.StringValue{Val: text}, nil
	case "Open":
		if err := i.launcher.Open(file.Path); err != nil {
			log.LogVf("open %s: %v", file.Path, err)
		}
		return nil, nil
	case "Write-String":
		text, err := stringArg(method, args)
		if err != nil {
			return nil, err
		}
		if err := resource.WriteString(file.Path, text); err != nil {
			return nil, hardFault("write", file.Path, err)
		}
		return nil, nil
	case "Rename":
		return i.rename(file.Path, method, args)
	case "Delete":
		if err := resource.RemoveFile(file.Path); err != nil {
			log.LogVf("delete %s: %v", file.Path, err)
		}
		return nil, nil
	}
	return nil, unknownMethod(file, method)
}

func (i *Interpreter) folderMember(folder runtime.FolderValue, method string, args []runtime.Value) (runtime.Value, error) {
	switch method {
	case "Item-List":
		entries, err := resource.List(folder.Path)
		if err != nil {
			return nil, hardFault("list", folder.Path, err)
		}
		items := make([]runtime.Value, len(entries))
		for idx, entry := range entries {
			if entry.IsDir {
				items[idx] = runtime.FolderValue{Path: entry.Path}
			} else {
				items[idx] = runtime.FileValue{Path: entry.Path}
			}
		}
		return &runtime.ArrayValue{Elements: items}, nil
	case "Rename":
		return i.rename(folder.Path, method, args)
	case "Delete":
		if err := resource.RemoveFolder(folder.Path); err != nil {
			log.LogVf("delete %s: %v", folder.Path, err)
		}
		return nil, nil
	}
	return nil, unknownMethod(folder, method)
}

func (i *Interpreter) rename(from, method string, args []runtime.Value) (runtime.Value, error) {
	target, err := stringArg(method, args)
	if err != nil {
		return nil, err
	}
	to := resource.Resolve(i.workDir, target)
	if err := resource.Rename(from, to); err != nil {
		log.LogVf("rename %s -> %s: %v", from, to, err)
	}
	return nil, nil
}

func (i *Interpreter) appMember(app runtime.AppValue, method string, args []runtime.Value) (runtime.Value, error) {
	if method != "Start" {
		return nil, unknownMethod(app, method)
	}
	argv, err := processArgs(args)
	if err != nil {
		return nil, err
	}
	log.LogVf("start %s %v in %s", app.Name, argv, i.workDir)
	err = i.launcher.Start(resource.Process{
		Name:   app.Name,
		Args:   argv,
		Dir:    i.workDir,
		Stdin:  i.stdin,
		Stdout: i.stdout,
		Stderr: i.stderr,
	})
	if err != nil {
		return nil, hardFault("start", app.Name, err)
	}
	return nil, nil
}

// processArgs accepts either positional arguments or a single Array of
// arguments, coercing each to text.
func processArgs(args []runtime.Value) ([]string, error) {
	if len(args) == 1 {
		if arr, ok := args[0].(*runtime.ArrayValue); ok {
			args = arr.Elements
		}
	}
	argv := make([]string, 0, len(args))
	for _, arg := range args {
		text, ok := runtime.Text(arg)
		if !ok {
			return nil, softFault("Start argument must be text, got %s", arg.Kind())
		}
		argv = append(argv, text)
	}
	return argv, nil
}
