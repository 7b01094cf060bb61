package advisor

import "regexp"

// pattern groups natural-language expressions that map onto one command
// category.
type pattern struct {
	category    string
	expressions []*regexp.Regexp
	suggestions []string
	description string
}

func compileAll(expressions ...string) []*regexp.Regexp {
	ret := make([]*regexp.Regexp, 0, len(expressions))
	for _, expression := range expressions {
		ret = append(ret, regexp.MustCompile(expression))
	}
	return ret
}

// defaultPatterns is the advisory phrase table. Matching only ever proposes
// a command; nothing here executes anything.
func defaultPatterns() []pattern {
	return []pattern{
		{
			category: "file_operations",
			expressions: compileAll(
				`list\s+(files?|contents?|directory)`,
				`show\s+(files?|contents?)`,
				`what'?s?\s+in\s+(this\s+)?(folder|directory)`,
				`display\s+(files?|contents?)`,
			),
			suggestions: []string{"ls", "ls -la", "dir"},
			description: "List files and directories",
		},
		{
			category: "navigation",
			expressions: compileAll(
				`go\s+to\s+(.+)`,
				`change\s+(to\s+)?(.+)`,
				`navigate\s+to\s+(.+)`,
			),
			suggestions: []string{"cd"},
			description: "Change directory",
		},
		{
			category: "create_file",
			expressions: compileAll(
				`create\s+(file|document)\s+(.+)`,
				`make\s+(file|document)\s+(.+)`,
				`new\s+(file|document)\s+(.+)`,
			),
			suggestions: []string{"touch"},
			description: "Create new file",
		},
		{
			category: "create_directory",
			expressions: compileAll(
				`create\s+(folder|directory)\s+(.+)`,
				`make\s+(folder|directory)\s+(.+)`,
				`new\s+(folder|directory)\s+(.+)`,
			),
			suggestions: []string{"mkdir"},
			description: "Create new directory",
		},
		{
			category: "copy",
			expressions: compileAll(
				`copy\s+(.+)\s+to\s+(.+)`,
				`duplicate\s+(.+)`,
			),
			suggestions: []string{"cp"},
			description: "Copy files or directories",
		},
		{
			category: "move",
			expressions: compileAll(
				`move\s+(.+)\s+to\s+(.+)`,
				`rename\s+(.+)\s+to\s+(.+)`,
			),
			suggestions: []string{"mv"},
			description: "Move or rename files",
		},
		{
			category: "delete",
			expressions: compileAll(
				`delete\s+(.+)`,
				`remove\s+(.+)`,
				`get\s+rid\s+of\s+(.+)`,
			),
			suggestions: []string{"rm", "rm -r"},
			description: "Delete files or directories",
		},
		{
			category: "search",
			expressions: compileAll(
				`search\s+for\s+(.+)`,
				`look\s+for\s+(.+)`,
			),
			suggestions: []string{"find", "grep"},
			description: "Search for files or content",
		},
		{
			category: "cpu_info",
			expressions: compileAll(
				`cpu\s+(info|usage|status)`,
				`processor\s+(info|usage)`,
				`how'?s?\s+the\s+cpu`,
			),
			suggestions: []string{"cpu"},
			description: "Get CPU information",
		},
		{
			category: "memory_info",
			expressions: compileAll(
				`memory\s+(info|usage)`,
				`ram\s+(info|usage)`,
				`how\s+much\s+memory`,
			),
			suggestions: []string{"memory"},
			description: "Get memory information",
		},
		{
			category: "disk_info",
			expressions: compileAll(
				`disk\s+(info|usage|space)`,
				`storage\s+(info|usage)`,
				`how\s+much\s+space`,
			),
			suggestions: []string{"disk"},
			description: "Get disk usage information",
		},
		{
			category: "processes",
			expressions: compileAll(
				`running\s+processes`,
				`what'?s?\s+running`,
				`process\s+list`,
				`task\s+manager`,
			),
			suggestions: []string{"ps"},
			description: "List running processes",
		},
		{
			category: "network",
			expressions: compileAll(
				`network\s+(info|status)`,
				`internet\s+(info|status)`,
				`connection\s+status`,
			),
			suggestions: []string{"ping", "curl"},
			description: "Get network information",
		},
		{
			category: "help",
			expressions: compileAll(
				`help\s+me`,
				`how\s+to\s+(.+)`,
				`what\s+can\s+i\s+do`,
				`show\s+commands`,
			),
			suggestions: []string{"help"},
			description: "Get help information",
		},
	}
}

// corrections maps frequent typos straight to their intended command.
var corrections = map[string]string{
	"sl":     "ls",
	"cd..":   "cd ..",
	"cd-":    "cd -",
	"ls-l":   "ls -l",
	"ls-a":   "ls -a",
	"ps-aux": "ps aux",
}

// examples lists usage samples per command for the explain surface.
var examples = map[string][]string{
	"ls":     {"ls", "ls -la", "ls -l", "ls -a"},
	"cd":     {"cd", "cd ..", "cd /home", "cd Documents"},
	"mkdir":  {"mkdir new_folder", "mkdir parent/child"},
	"cp":     {"cp file1.txt file2.txt", "cp -r folder1 folder2"},
	"mv":     {"mv old_name.txt new_name.txt", "mv file.txt Documents/"},
	"rm":     {"rm file.txt", "rm -r folder"},
	"cat":    {"cat file.txt", "cat file1.txt file2.txt"},
	"grep":   {"grep pattern file.txt", "grep error app.log"},
	"find":   {"find . log", "find /home txt"},
	"ps":     {"ps"},
	"cpu":    {"cpu"},
	"memory": {"memory"},
	"disk":   {"disk"},
	"help":   {"help", "help ls", "help cd"},
}
