package cmd

import "github.com/spf13/cobra"

const (
	groupJobs  = "jobs"
	groupOther = "other"
)

const banner = "TUIRUN - run jobs behind a live terminal view"

// The root usage shows the banner and grouped commands; subcommands show
// their own use line and list nested commands without a group.
const usageTemplate = `Usage: {{if .HasParent}}{{.UseLine}}{{else}}tuirun [options] [command]

` + banner + `{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{range $group := .Groups}}

{{.Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if eq (len .Groups) 0}}

Commands:{{range $cmds}}{{if .IsAvailableCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Options:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Options:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`

const helpTemplate = `{{with (and .HasParent (or .Long .Short))}}{{. | trimTrailingWhitespaces}}

{{end}}{{if or .Runnable .HasSubCommands}}{{.UsageString}}{{end}}`

func configureHelp(cmd *cobra.Command) {
	cmd.AddGroup(
		&cobra.Group{ID: groupJobs, Title: "Job Commands:"},
		&cobra.Group{ID: groupOther, Title: "Other Commands:"},
	)
	cmd.SetHelpCommandGroupID(groupOther)
	cmd.SetCompletionCommandGroupID(groupOther)

	cmd.InitDefaultHelpFlag()
	cmd.Flags().Lookup("help").Usage = "Show help"
	cmd.SetUsageTemplate(usageTemplate)
	cmd.SetHelpTemplate(helpTemplate)
}
