package model

import (
	"fmt"
	"regexp"
)

var (
	phonePattern   = regexp.MustCompile(`^[0-9]{10}$`)
	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
)

type ShippingAddress struct {
	FullName string
	Phone    string
	City     string
	State    string
	Pincode  string
}

func (a ShippingAddress) Validate() error {
	if !phonePattern.MatchString(a.Phone) {
		return fmt.Errorf("please enter a valid 10-digit phone number")
	}
	if !pincodePattern.MatchString(a.Pincode) {
		return fmt.Errorf("please enter a valid 6-digit pincode")
	}
	return nil
}

// Compact is the wire form the backend stores for an order. It keeps only
// city and pincode; the rest of the address never leaves the client.
func (a ShippingAddress) Compact() string {
	return a.City + "-" + a.Pincode
}
