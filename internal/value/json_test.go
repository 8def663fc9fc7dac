package value

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpValues = cmp.AllowUnexported(Product{}, List{}, Type{})

func TestMarshal_WireForm(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"string", NewString("hi"), `{"tag":"String","value":"hi"}`},
		{"int", NewInt(-7), `{"tag":"Int","value":-7}`},
		{"float", NewFloat(0.5), `{"tag":"Float","value":0.5}`},
		{
			"product",
			NewProduct(map[string]Value{"text": NewString("x")}),
			`{"tag":"Product","value":{"text":{"tag":"String","value":"x"}}}`,
		},
		{
			"empty list",
			Strings(),
			`{"tag":"List","elem":{"tag":"String"},"value":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(tt.v)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestUnmarshal_Nested(t *testing.T) {
	data := `{"tag":"Product","value":{
		"text":{"tag":"String","value":"cat dog"},
		"maxKeywords":{"tag":"Int","value":2},
		"tags":{"tag":"List","elem":{"tag":"String"},"value":[{"tag":"String","value":"a"}]}
	}}`

	got, err := Unmarshal([]byte(data))
	require.NoError(t, err)

	want := NewProduct(map[string]Value{
		"text":        NewString("cat dog"),
		"maxKeywords": NewInt(2),
		"tags":        Strings("a"),
	})
	if diff := cmp.Diff(want, got, cmpValues); diff != "" {
		t.Errorf("Unmarshal mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshal_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"unknown tag", `{"tag":"Bool","value":true}`},
		{"missing payload", `{"tag":"String"}`},
		{"fractional int", `{"tag":"Int","value":2.5}`},
		{"quoted int", `{"tag":"Int","value":"2"}`},
		{"string payload mismatch", `{"tag":"String","value":3}`},
		{"list without elem", `{"tag":"List","value":[]}`},
		{"bad nested field", `{"tag":"Product","value":{"a":{"tag":"Nope","value":1}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestUnmarshal_ListItemsCheckedByDecode(t *testing.T) {
	// Wire decoding is syntactic; a List<String> holding an Int is caught
	// by Decode, not Unmarshal.
	data := `{"tag":"List","elem":{"tag":"String"},"value":[{"tag":"Int","value":1}]}`
	v, err := Unmarshal([]byte(data))
	require.NoError(t, err)

	_, err = Decode(v, ListType(StringType()))
	assert.ErrorIs(t, err, ErrShape)
}

func TestWire_InStruct(t *testing.T) {
	type request struct {
		Input Wire `json:"input"`
	}

	var req request
	require.NoError(t, json.Unmarshal([]byte(`{"input":{"tag":"Float","value":1}}`), &req))
	assert.Equal(t, NewFloat(1), req.Input.Value)

	var empty request
	require.NoError(t, json.Unmarshal([]byte(`{"input":null}`), &empty))
	assert.Nil(t, empty.Input.Value)

	out, err := json.Marshal(request{Input: Wire{Value: NewInt(9)}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"input":{"tag":"Int","value":9}}`, string(out))
}

func TestType_JSON(t *testing.T) {
	typ := ProductType(map[string]Type{
		"keywords": ListType(StringType()),
		"count":    IntType(),
	})

	data, err := json.Marshal(typ)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tag":"Product","fields":{
		"keywords":{"tag":"List","elem":{"tag":"String"}},
		"count":{"tag":"Int"}
	}}`, string(data))

	var back Type
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, typ.Equal(back))

	var bad Type
	assert.Error(t, json.Unmarshal([]byte(`{"tag":"List"}`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`{"tag":"Map"}`), &bad))

	_, err = json.Marshal(Type{})
	assert.Error(t, err)
}
