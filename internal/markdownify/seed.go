package markdownify

// Substitution is a precomputed replacement for text that harvesting may
// not find on its own. Category selects the feature gate and the pass: "h"
// joins the header pass, anything else the inline pass.
type Substitution struct {
	Category string
	Text     string
	Markdown string
}

var mailtoForms = []string{
	"%name% <%email%>",
	"%name% (%email%)",
	"%name% %email%",
	`"%name%" <%email%>`,
	`"%name%" (%email%)`,
	`"%name%" %email%`,
}

// MailtoSeed maps the usual ways a mail client prints a sender to one
// Markdown link.
func MailtoSeed(name, email string) []Substitution {
	if name == "" || email == "" {
		return nil
	}
	vars := map[string]string{"name": name, "email": email}
	link := AnchorFormat(name, email, "")
	subs := make([]Substitution, 0, len(mailtoForms))
	for _, form := range mailtoForms {
		subs = append(subs, Substitution{
			Category: FeatureLinks,
			Text:     Expand(form, vars),
			Markdown: link,
		})
	}
	return subs
}
