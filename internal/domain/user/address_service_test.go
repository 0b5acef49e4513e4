// internal/domain/user/address_service_test.go
package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddressRequest() *SaveAddressRequest {
	return &SaveAddressRequest{
		Name:    "Priya Sharma",
		Phone:   "9876543210",
		House:   "42/1",
		Area:    "Jayanagar 4th Block",
		City:    "Bengaluru",
		State:   "Karnataka",
		Pincode: "560001",
	}
}

func TestSaveAddressRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SaveAddressRequest)
		wantErr string
	}{
		{
			name:   "valid request",
			mutate: func(r *SaveAddressRequest) {},
		},
		{
			name:    "missing name",
			mutate:  func(r *SaveAddressRequest) { r.Name = "  " },
			wantErr: "please enter name",
		},
		{
			name:    "phone too short",
			mutate:  func(r *SaveAddressRequest) { r.Phone = "98765" },
			wantErr: "please enter a valid 10-digit phone number",
		},
		{
			name:    "phone too long",
			mutate:  func(r *SaveAddressRequest) { r.Phone = "98765432100" },
			wantErr: "please enter a valid 10-digit phone number",
		},
		{
			name:    "phone with letters",
			mutate:  func(r *SaveAddressRequest) { r.Phone = "98765abcde" },
			wantErr: "please enter a valid 10-digit phone number",
		},
		{
			name:    "missing house",
			mutate:  func(r *SaveAddressRequest) { r.House = "" },
			wantErr: "please enter house/flat number",
		},
		{
			name:    "missing area",
			mutate:  func(r *SaveAddressRequest) { r.Area = "" },
			wantErr: "please enter area/locality",
		},
		{
			name:    "missing city",
			mutate:  func(r *SaveAddressRequest) { r.City = "" },
			wantErr: "please enter city",
		},
		{
			name:    "missing state",
			mutate:  func(r *SaveAddressRequest) { r.State = "" },
			wantErr: "please enter state",
		},
		{
			name:    "pincode too short",
			mutate:  func(r *SaveAddressRequest) { r.Pincode = "5600" },
			wantErr: "please enter a valid 6-digit pincode",
		},
		{
			name:    "pincode with letters",
			mutate:  func(r *SaveAddressRequest) { r.Pincode = "56000a" },
			wantErr: "please enter a valid 6-digit pincode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validAddressRequest()
			tt.mutate(req)

			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestSaveAddressRequestValidateFirstFailureWins(t *testing.T) {
	// Multiple failing fields report only the first, in form order
	req := &SaveAddressRequest{Phone: "123", Pincode: "99"}

	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, "please enter name", err.Error())
}
