// Package markdownify converts the HTML body of an email into the Markdown
// dialect used by card descriptions.
//
// Conversion never rewrites the tree. Instead it works on a flattened copy
// of the markup:
//
//  1. The markup is normalized: block elements become blank lines, <br>
//     becomes a newline, list items become "* " bullets and remaining tags
//     are stripped. Entities stay encoded. Tags of disabled categories are
//     kept and hidden behind private-use tokens.
//  2. Header elements are harvested into a map from their visible text to
//     the Markdown replacement. Every key found in the working text is
//     swapped for an opaque %g2t_placeholder:N% token, longest key first,
//     and the tokens are then expanded back into Markdown.
//  3. The same happens for emphasis, strike-through and links.
//  4. Cleanup decodes entities once, collapses whitespace and puts the
//     kept tags back.
//
// Swapping keys for placeholders before expanding keeps a short key such as
// "Example" from matching inside the replacement already produced for a
// longer one such as "Example Link".
//
// Each call owns its own state, so Markdownify is safe for concurrent use.
package markdownify
