package node

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"quadsolver/internal/api"
)

var errNilRequest = errors.New("request cannot be nil")

// structToCoefficients extracts a, b and c from a Solve request.
func structToCoefficients(req *structpb.Struct) (a, b, c float64, err error) {
	if req == nil {
		return 0, 0, 0, errNilRequest
	}
	if a, err = numberField(req, api.FieldA); err != nil {
		return 0, 0, 0, err
	}
	if b, err = numberField(req, api.FieldB); err != nil {
		return 0, 0, 0, err
	}
	if c, err = numberField(req, api.FieldC); err != nil {
		return 0, 0, 0, err
	}
	return a, b, c, nil
}

// coefficientsToStruct builds a Solve request.
func coefficientsToStruct(a, b, c float64) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			api.FieldA: structpb.NewNumberValue(a),
			api.FieldB: structpb.NewNumberValue(b),
			api.FieldC: structpb.NewNumberValue(c),
		},
	}
}

// rootsToStruct builds a Solve response. NaN and ±Inf survive the binary
// proto encoding unchanged.
func rootsToStruct(root1, root2 float64) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			api.FieldRoot1: structpb.NewNumberValue(root1),
			api.FieldRoot2: structpb.NewNumberValue(root2),
		},
	}
}

// structToRoots extracts root1 and root2 from a Solve response.
func structToRoots(resp *structpb.Struct) (root1, root2 float64, err error) {
	if resp == nil {
		return 0, 0, errors.New("response cannot be nil")
	}
	if root1, err = numberField(resp, api.FieldRoot1); err != nil {
		return 0, 0, err
	}
	if root2, err = numberField(resp, api.FieldRoot2); err != nil {
		return 0, 0, err
	}
	return root1, root2, nil
}

func numberField(s *structpb.Struct, name string) (float64, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return 0, fmt.Errorf("missing field %q", name)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("field %q must be a number", name)
	}
	return n.NumberValue, nil
}
