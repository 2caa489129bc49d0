// Package validation decides whether form fields hold acceptable values.
//
// The rule table is evaluated on the trimmed field value and the first
// matching rule wins: required, email, number, then phone. Results are plain
// values; rendering an error next to the field is left to the caller.
//
//	res := validation.ValidateField(validation.FieldDescriptor{
//		Name:     "email",
//		Kind:     validation.KindEmail,
//		Value:    "ada@example.com",
//		Required: true,
//	})
//	if !res.Valid {
//		fmt.Println(res.Message)
//	}
package validation
