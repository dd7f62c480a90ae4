package mcpserver

// ContentFormatContract describes the content directory layout that
// LLM consumers should follow when proposing portfolio changes.
const ContentFormatContract = `# Portfolio Content Format

The content directory is optional. Anything missing falls back to the
built-in portfolio, down to single profile fields in site.yaml.

## Layout

` + "```" + `text
content/
  site.yaml            # profile texts, links and skills
  projects/
    ai-chat.md         # one file per project; slug = file name stem
  assets/
    avatar.png         # served at /assets/avatar.png
` + "```" + `

## site.yaml

` + "```" + `yaml
profile:
  handle: "@rajrishis"
  name: Rajrishi Sharma                # REQUIRED
  tagline: Full-Stack Developer
  bio: Plain text, no HTML.
  availability: Available for new projects
  email: someone@example.com           # REQUIRED – valid address
  contact_text: Plain text, no HTML.
  github: https://github.com/someone   # OPTIONAL – absolute URL
  linkedin: https://linkedin.com/in/someone
  footer_links:
    - label: GitHub
      url: https://github.com/someone
  copyright: "© 2025 Someone"
skills: [Go, SQL, Docker]              # display order
` + "```" + `

## Project files

` + "```" + `markdown
---
title: AI Chat Application           # OPTIONAL – falls back to the first # heading
order: 1                             # display position, ascending; ties break by file name
tech: [React, Node.js]               # REQUIRED – at least one
github: https://github.com/someone/ai-chat
demo: https://demo.example.com
accent: blue                         # blue cyan purple green orange pink red yellow indigo teal
---

One paragraph describing the project. Markdown is reduced to plain text.
` + "```" + `

## Rules

1. **Frontmatter is mandatory** in project files and must open the file.
2. **Descriptions are plain text.** HTML is stripped and Markdown emphasis removed.
3. **URLs** must be absolute http(s) URLs; footer links may also use mailto:.
4. **Slugs** are unique; they come from file names, so keep names lowercase kebab-case.
5. An invalid file rejects the whole reload; the previous content stays live.
`
