// Package form wires the validation rules, the feedback renderer and the
// password checklist to a single host document.
//
// A Controller plays the role of the page script: Input, Focus and Submit
// are the events a browser would dispatch, and every call runs to completion
// under the controller's lock before the next one starts. All state lives in
// the document itself; Snapshot reads it back out for transports that need
// a structured view.
//
// Typical use:
//
//	doc, _ := dom.ParseString(page)
//	ctrl, err := form.New(doc, form.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	res, _ := ctrl.Input(ctx, rules.FieldEmail, "ada@example.com")
//	outcome, _ := ctrl.Submit(ctx, values)
package form
