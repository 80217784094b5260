// Package serprank checks where a business ranks in search result pages.
// For each keyword it fetches the result page, locates the requested result
// sections (popular blog posts, general blog posts, web results, local place
// listings) and reports the position of the first entry mentioning the
// business name.
//
// This package contains domain types, the rank extraction core and the
// interfaces of its collaborators, following Ben Johnson's Standard Package
// Layout. Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, sqlite/, rod/).
package serprank
