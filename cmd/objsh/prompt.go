package main

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
)

// currentUser returns the login name shown in the prompt.
func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		name := u.Username
		if idx := strings.LastIndex(name, `\`); idx >= 0 {
			name = name[idx+1:]
		}
		return name
	}
	if env := strings.TrimSpace(os.Getenv("USER")); env != "" {
		return env
	}
	return "user"
}

// gitBranch names the checked-out branch of the repository containing dir.
// A detached HEAD yields the short commit hash; no repository yields "".
func gitBranch(dir string) string {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}
	head, err := repo.Head()
	if err != nil {
		return ""
	}
	if head.Name().IsBranch() {
		return head.Name().Short()
	}
	hash := head.Hash().String()
	if len(hash) > 7 {
		hash = hash[:7]
	}
	return hash
}

// renderPrompt fills the {user}, {folder} and {branch} placeholders.
func renderPrompt(tmpl, userName, workDir, branch string) string {
	folder := filepath.Base(workDir)
	return strings.NewReplacer(
		"{user}", userName,
		"{folder}", folder,
		"{branch}", branch,
	).Replace(tmpl)
}
