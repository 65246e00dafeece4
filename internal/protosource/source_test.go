package protosource

import (
	"testing"

	"github.com/jhump/protoreflect/desc/protoparse"

	"github.com/funvibe/bytegen/internal/config"
	"github.com/funvibe/bytegen/internal/typedesc"
	"github.com/funvibe/bytegen/internal/typepool"
)

const orderProto = `
syntax = "proto3";
package shop;
option java_package = "com.example.shop";

message Order {
  string id = 1;
  repeated int32 quantities = 2;
  map<string, Item> items = 3;
  Item first_item = 4;
  Status status = 5;
  bytes payload = 6;

  message Item {
    double price = 1;
  }
  enum Status {
    NEW = 0;
    PAID = 1;
  }
}
`

const customerProto = `
syntax = "proto3";
package shop;
option java_package = "com.example.shop";
option java_multiple_files = true;

import "shop/order.proto";

message Customer {
  string name = 1;
  repeated Order orders = 2;
}
`

func parser() protoparse.Parser {
	return protoparse.Parser{
		Accessor: protoparse.FileContentsFromMap(map[string]string{
			"shop/order.proto":    orderProto,
			"shop/customer.proto": customerProto,
		}),
	}
}

func load(t *testing.T, files ...string) *typepool.Pool {
	t.Helper()
	p := typepool.New()
	entries, err := Parse(parser(), files, p)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Load(entries); err != nil {
		t.Fatal(err)
	}
	return p
}

func lookup(t *testing.T, p *typepool.Pool, name string) *typedesc.TypeDescription {
	t.Helper()
	td, ok := p.Lookup(name)
	if !ok {
		t.Fatalf("%s not found, have %v", name, p.Names())
	}
	return td
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"id", "Id"},
		{"first_item", "FirstItem"},
		{"foo2bar", "Foo2Bar"},
		{"user_id_v2", "UserIdV2"},
		{"already_Camel", "AlreadyCamel"},
		{"order-service", "OrderService"},
	}
	for _, tt := range tests {
		if got := camelCase(tt.in, true); got != tt.want {
			t.Errorf("camelCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMessageClasses(t *testing.T) {
	p := load(t, "shop/order.proto")

	order := lookup(t, p, "com.example.shop.OrderOuterClass$Order")
	if super, _ := order.SuperClass(); super.Name() != config.GeneratedMessageName {
		t.Errorf("Order should extend GeneratedMessageV3, got %v", super)
	}
	if outer, ok := order.DeclaringType(); !ok || outer.Name() != "com.example.shop.OrderOuterClass" {
		t.Errorf("Order should be nested in the outer class, got %v", outer)
	}
	lookup(t, p, "com.example.shop.OrderOuterClass$Order$Item")
	status := lookup(t, p, "com.example.shop.OrderOuterClass$Order$Status")
	if !status.IsAssignableTo(lookup(t, p, ProtocolMessageEnumName)) {
		t.Errorf("enums implement ProtocolMessageEnum")
	}
	if _, ok := p.Lookup("com.example.shop.OrderOuterClass$Order$ItemsEntry"); ok {
		t.Errorf("map entry messages are not classes")
	}

	tests := []struct {
		method     string
		descriptor string
		symbol     string
	}{
		{"getId", "()Ljava/lang/String;", "java.lang.String"},
		{"getQuantitiesList", "()Ljava/util/List;", "java.util.List<java.lang.Integer>"},
		{"getQuantitiesCount", "()I", "int"},
		{"getQuantities", "(I)I", "int"},
		{"getItemsMap", "()Ljava/util/Map;", "java.util.Map<java.lang.String, com.example.shop.OrderOuterClass$Order$Item>"},
		{"getFirstItem", "()Lcom/example/shop/OrderOuterClass$Order$Item;", "com.example.shop.OrderOuterClass$Order$Item"},
		{"hasFirstItem", "()Z", "boolean"},
		{"getStatus", "()Lcom/example/shop/OrderOuterClass$Order$Status;", "com.example.shop.OrderOuterClass$Order$Status"},
		{"getPayload", "()Lcom/google/protobuf/ByteString;", "com.google.protobuf.ByteString"},
		{"getDefaultInstance", "()Lcom/example/shop/OrderOuterClass$Order;", "com.example.shop.OrderOuterClass$Order"},
	}
	for _, tt := range tests {
		m, ok := order.FindMethod(tt.method, tt.descriptor)
		if !ok {
			t.Errorf("%s%s not found", tt.method, tt.descriptor)
			continue
		}
		ret, err := p.GenericReturnType(m)
		if err != nil {
			t.Errorf("%s: %v", tt.method, err)
			continue
		}
		if ret.Symbol() != tt.symbol {
			t.Errorf("%s returns %s, want %s", tt.method, ret.Symbol(), tt.symbol)
		}
	}
	if _, ok := order.FindMethod("hasId", "()Z"); ok {
		t.Errorf("scalar proto3 fields have no has-method")
	}
}

func TestMultipleFilesAndImports(t *testing.T) {
	p := load(t, "shop/customer.proto")

	customer := lookup(t, p, "com.example.shop.Customer")
	if _, ok := customer.DeclaringType(); ok {
		t.Errorf("java_multiple_files types are top-level")
	}
	// imported file is converted too
	lookup(t, p, "com.example.shop.OrderOuterClass$Order")

	m, ok := customer.FindMethod("getOrdersList", "()Ljava/util/List;")
	if !ok {
		t.Fatal("getOrdersList not found")
	}
	ret, err := p.GenericReturnType(m)
	if err != nil {
		t.Fatal(err)
	}
	arg := ret.Parameters().Get(0)
	if arg.AsRawType().Name() != "com.example.shop.OrderOuterClass$Order" {
		t.Errorf("orders element = %v", arg.AsRawType())
	}
}

func TestSupportEntriesSkippedWhenKnown(t *testing.T) {
	p := typepool.New()
	if err := p.Load([]typepool.TypeEntry{{Name: ListName, Interface: true}}); err != nil {
		t.Fatal(err)
	}
	entries, err := Parse(parser(), []string{"shop/order.proto"}, p)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name == ListName {
			t.Errorf("java.util.List is already known and must not be emitted")
		}
	}
	if err := p.Load(entries); err != nil {
		t.Fatalf("loading alongside existing types: %v", err)
	}

	all, err := Parse(parser(), []string{"shop/order.proto"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, e := range all {
		found = found || e.Name == ListName
	}
	if !found {
		t.Errorf("without known types java.util.List is emitted")
	}
}

func TestParseErrors(t *testing.T) {
	bad := protoparse.Parser{
		Accessor: protoparse.FileContentsFromMap(map[string]string{
			"bad.proto": `syntax = "proto3"; message { }`,
		}),
	}
	if _, err := Parse(bad, []string{"bad.proto"}, nil); err == nil {
		t.Errorf("expected parse error")
	}
	if entries, err := Parse(parser(), nil, nil); err != nil || entries != nil {
		t.Errorf("no files should give no entries, got %v, %v", entries, err)
	}
}
