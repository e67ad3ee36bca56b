package graphql

import (
	"fmt"

	"github.com/feyzullahyildiz/patika-graphql/pkg/model"
)

// Input decoding turns the generic argument maps produced by the executor
// into the model's typed inputs and patches. Literal inputs are already
// shape-checked by query validation; inputs supplied through variables are
// not, so required fields are enforced here as well.
//
// Patch decoding is presence-based: a key that is absent or explicitly
// null yields a nil pointer, which Apply treats as "leave unchanged".

func decodeUserInput(m map[string]interface{}) (model.UserInput, error) {
	var in model.UserInput
	var err error
	if in.Username, err = requireString(m, "username"); err != nil {
		return in, err
	}
	if in.Email, err = requireString(m, "email"); err != nil {
		return in, err
	}
	return in, nil
}

func decodeUserPatch(m map[string]interface{}) (model.UserPatch, error) {
	var p model.UserPatch
	var err error
	if p.Username, err = optString(m, "username"); err != nil {
		return p, err
	}
	if p.Email, err = optString(m, "email"); err != nil {
		return p, err
	}
	return p, nil
}

func decodeEventInput(m map[string]interface{}) (model.EventInput, error) {
	var in model.EventInput
	var err error
	if in.Title, err = requireString(m, "title"); err != nil {
		return in, err
	}
	if in.Desc, err = requireString(m, "desc"); err != nil {
		return in, err
	}
	if in.Date, err = requireString(m, "date"); err != nil {
		return in, err
	}
	if in.From, err = requireString(m, "from"); err != nil {
		return in, err
	}
	if in.LocationID, err = requireInt(m, "location_id"); err != nil {
		return in, err
	}
	if in.UserID, err = requireInt(m, "user_id"); err != nil {
		return in, err
	}
	return in, nil
}

func decodeEventPatch(m map[string]interface{}) (model.EventPatch, error) {
	var p model.EventPatch
	var err error
	if p.Title, err = optString(m, "title"); err != nil {
		return p, err
	}
	if p.Desc, err = optString(m, "desc"); err != nil {
		return p, err
	}
	if p.Date, err = optString(m, "date"); err != nil {
		return p, err
	}
	if p.From, err = optString(m, "from"); err != nil {
		return p, err
	}
	if p.LocationID, err = optInt(m, "location_id"); err != nil {
		return p, err
	}
	if p.UserID, err = optInt(m, "user_id"); err != nil {
		return p, err
	}
	return p, nil
}

func decodeLocationInput(m map[string]interface{}) (model.LocationInput, error) {
	var in model.LocationInput
	var err error
	if in.Name, err = requireString(m, "name"); err != nil {
		return in, err
	}
	if in.Desc, err = requireString(m, "desc"); err != nil {
		return in, err
	}
	if in.Lat, err = requireFloat(m, "lat"); err != nil {
		return in, err
	}
	if in.Lng, err = requireFloat(m, "lng"); err != nil {
		return in, err
	}
	return in, nil
}

func decodeLocationPatch(m map[string]interface{}) (model.LocationPatch, error) {
	var p model.LocationPatch
	var err error
	if p.Name, err = optString(m, "name"); err != nil {
		return p, err
	}
	if p.Desc, err = optString(m, "desc"); err != nil {
		return p, err
	}
	if p.Lat, err = optFloat(m, "lat"); err != nil {
		return p, err
	}
	if p.Lng, err = optFloat(m, "lng"); err != nil {
		return p, err
	}
	return p, nil
}

func decodeParticipantInput(m map[string]interface{}) (model.ParticipantInput, error) {
	var in model.ParticipantInput
	var err error
	if in.UserID, err = requireInt(m, "user_id"); err != nil {
		return in, err
	}
	if in.EventID, err = requireInt(m, "event_id"); err != nil {
		return in, err
	}
	return in, nil
}

func decodeParticipantPatch(m map[string]interface{}) (model.ParticipantPatch, error) {
	var p model.ParticipantPatch
	var err error
	if p.UserID, err = optInt(m, "user_id"); err != nil {
		return p, err
	}
	if p.EventID, err = optInt(m, "event_id"); err != nil {
		return p, err
	}
	return p, nil
}

func requireString(m map[string]interface{}, key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", fmt.Errorf("%s is required", key)
	}
	s, ok := toString(v)
	if !ok {
		return "", fmt.Errorf("%s must be a String", key)
	}
	return s, nil
}

func requireInt(m map[string]interface{}, key string) (int, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("%s is required", key)
	}
	n, ok := toInt(v)
	if !ok {
		return 0, fmt.Errorf("%s must be an Int", key)
	}
	return n, nil
}

func requireFloat(m map[string]interface{}, key string) (float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("%s is required", key)
	}
	fl, ok := toFloat(v)
	if !ok {
		return 0, fmt.Errorf("%s must be a Float", key)
	}
	return fl, nil
}

func optString(m map[string]interface{}, key string) (*string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := toString(v)
	if !ok {
		return nil, fmt.Errorf("%s must be a String", key)
	}
	return &s, nil
}

func optInt(m map[string]interface{}, key string) (*int, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	n, ok := toInt(v)
	if !ok {
		return nil, fmt.Errorf("%s must be an Int", key)
	}
	return &n, nil
}

func optFloat(m map[string]interface{}, key string) (*float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	fl, ok := toFloat(v)
	if !ok {
		return nil, fmt.Errorf("%s must be a Float", key)
	}
	return &fl, nil
}
