// Package dom is the document boundary of the form checker. It wraps a
// goquery document parsed from the host page and exposes the handful of
// element operations validation feedback needs: value access, marker class
// toggling, show/hide through the inline display style, and sibling
// insertion of sanitized fragments.
package dom
