package openapi_test

import (
	"fmt"

	v "github.com/Gobd/fluentvalidation"
	"github.com/Gobd/fluentvalidation/openapi"
)

type Item struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	SKU   string  `json:"sku"`
}

var itemValidator = func() *v.Validator[Item] {
	iv := v.New[Item]()
	v.RuleForString(iv, func(it Item) string { return it.Name }).NotEmpty().WithName("name")
	v.RuleForString(iv, func(it Item) string { return it.Name }).Length(1, 200).WithName("name")
	v.RuleForNumber(iv, func(it Item) float64 { return it.Price }).Positive().WithName("price")
	v.RuleForString(iv, func(it Item) string { return it.SKU }).Matches(skuPattern).WithName("sku")
	return iv
}()

func (Item) Rules() v.SchemaProvider {
	return itemValidator
}

func ExamplePost() {
	doc := openapi.DocBase("Shop API", "Example API", "1.0.0")

	openapi.Post(doc, "/items", "createItem", openapi.Endpoint{
		Summary:  "Create an item",
		Request:  Item{},
		Response: Item{},
	})

	fmt.Println(doc.Paths.Value("/items").Post.OperationID)
	// Output: createItem
}

func ExampleDocBase() {
	doc := openapi.DocBase("My Service", "A cool service", "0.1.0")
	fmt.Println(doc.Info.Title)
	fmt.Println(doc.OpenAPI)
	// Output:
	// My Service
	// 3.0.3
}

func ExampleGet() {
	doc := openapi.DocBase("Shop API", "Example API", "1.0.0")

	openapi.Get(doc, "/items", "listItems", openapi.Endpoint{
		Summary:  "List all items",
		Response: []Item{},
	})

	fmt.Println(doc.Paths.Value("/items").Get.OperationID)
	// Output: listItems
}

func ExampleNewSchemaRefForValue() {
	ref, err := openapi.NewSchemaRefForValue(Item{})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ref.Value.Required)
	fmt.Println(*ref.Value.Properties["name"].Value.MaxLength)
	// Output:
	// [name]
	// 200
}
