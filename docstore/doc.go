// Package docstore persists document field values and applies the patch
// events emitted by field controllers.
//
// A field with no value has no row. Set patches upsert the row and unset
// patches delete it, so an empty string is never stored.
//
//	store, err := docstore.Open("docs.db", docstore.Options{})
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	c := field.NewController(field.Options{
//	    OnChange: store.Channel(ctx, docID, schema.FieldSTL),
//	})
package docstore
