package mcpserver

// LinkFormatContract describes the reference syntax and front matter keys
// the vault understands. LLM consumers should read it before emitting
// links or aliases.
const LinkFormatContract = `# Ansuz Link Format Contract

## Vault eligibility

A file is part of the vault when all of the following hold:

1. It has the ` + "`" + `.md` + "`" + ` extension.
2. It lies under the vault root (resolved path, symlinks don't escape).
3. No path segment is named ` + "`" + `.trash` + "`" + `.
4. Its relative path contains no ` + "`" + `~` + "`" + ` (temp/backup marker).

## Link syntaxes

` + "```" + `markdown
[[target]]              wiki link
[[target|display]]      wiki link with display text
[description](target)   markdown link
` + "```" + `

- Wiki targets without an extension refer to Markdown files: ` + "`" + `[[note]]` + "`" + `
  resolves against ` + "`" + `note.md` + "`" + `. Partial paths work: ` + "`" + `[[notes/a]]` + "`" + `.
- Markdown targets are taken verbatim and should carry their extension.
- ` + "`" + `%20` + "`" + ` in a target is read as a space.
- A target containing ` + "`" + `:` + "`" + ` is an external URL and is never matched
  against the vault.
- A target matching several documents is ambiguous; the resolver returns
  every candidate and the caller picks one.

## Front matter

` + "```" + `markdown
---
alias: Short Name
aliases:
  - Other Name
  - Codename
---
` + "```" + `

- The block must start at the very first byte of the file with ` + "`" + `---` + "`" + `
  and be closed by a second ` + "`" + `---` + "`" + `.
- ` + "`" + `alias` + "`" + ` (string) and ` + "`" + `aliases` + "`" + ` (list of strings) may both be
  present; every entry resolves to the declaring document.

## Tags

Inline tokens of the form ` + "`" + `#tag` + "`" + `: ` + "`" + `#` + "`" + ` followed by letters, digits,
` + "`" + `-` + "`" + `, ` + "`" + `_` + "`" + `, ` + "`" + `/` + "`" + ` or ` + "`" + `+` + "`" + `. Examples: ` + "`" + `#project-a` + "`" + `, ` + "`" + `#work/notes` + "`" + `, ` + "`" + `#c++` + "`" + `.
`
