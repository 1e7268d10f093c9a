package seeders

import "tailorshop/pkg/constants"

var statusesData = []struct {
	Code        string
	Label       string
	Description string
	Sequence    int
	IsTerminal  bool
}{
	{Code: constants.StatusBooked, Label: "Booked", Description: "Order taken and measurements recorded", Sequence: 1},
	{Code: constants.StatusFabricAllocated, Label: "Fabric Allocated", Description: "Material reserved from stock", Sequence: 2},
	{Code: constants.StatusStitching, Label: "Stitching", Description: "Garment is being stitched", Sequence: 3},
	{Code: constants.StatusTrialScheduled, Label: "Trial Scheduled", Description: "Customer fitting appointment booked", Sequence: 4},
	{Code: constants.StatusAlteration, Label: "Alteration", Description: "Adjustments after trial", Sequence: 5},
	{Code: constants.StatusReady, Label: "Ready", Description: "Garment finished and awaiting delivery", Sequence: 6},
	{Code: constants.StatusDelivered, Label: "Delivered", Description: "Handed over to the customer", Sequence: 7, IsTerminal: true},
	{Code: constants.StatusClosed, Label: "Closed", Description: "Order settled and archived", Sequence: 8, IsTerminal: true},
}

var transitionsData = []struct {
	From         string
	To           string
	AllowedRoles []string
	Precondition string
	Description  string
}{
	{From: constants.StatusBooked, To: constants.StatusFabricAllocated, AllowedRoles: []string{constants.RoleDesigner, constants.RoleStaff, constants.RoleAdmin}, Description: "Reserve fabric for the order"},
	{From: constants.StatusFabricAllocated, To: constants.StatusStitching, AllowedRoles: []string{constants.RoleTailor, constants.RoleStaff, constants.RoleAdmin}, Description: "Start stitching"},
	{From: constants.StatusStitching, To: constants.StatusTrialScheduled, AllowedRoles: []string{constants.RoleTailor, constants.RoleStaff, constants.RoleAdmin}, Description: "Book a fitting"},
	{From: constants.StatusStitching, To: constants.StatusReady, AllowedRoles: []string{constants.RoleTailor, constants.RoleStaff, constants.RoleAdmin}, Description: "Finish without a trial"},
	{From: constants.StatusTrialScheduled, To: constants.StatusAlteration, AllowedRoles: []string{constants.RoleStaff, constants.RoleAdmin}, Description: "Trial revealed adjustments"},
	{From: constants.StatusTrialScheduled, To: constants.StatusReady, AllowedRoles: []string{constants.RoleTailor, constants.RoleStaff, constants.RoleAdmin}, Description: "Trial passed"},
	{From: constants.StatusAlteration, To: constants.StatusReady, AllowedRoles: []string{constants.RoleTailor, constants.RoleStaff, constants.RoleAdmin}, Description: "Alterations done"},
	{From: constants.StatusReady, To: constants.StatusDelivered, AllowedRoles: []string{constants.RoleDelivery, constants.RoleStaff, constants.RoleAdmin}, Precondition: constants.PreconditionPaymentCompleted, Description: "Hand over to the customer"},
	{From: constants.StatusDelivered, To: constants.StatusClosed, AllowedRoles: []string{constants.RoleStaff, constants.RoleAdmin}, Description: "Settle and archive"},
}

var rolesData = []struct {
	Name        string
	Description string
}{
	{Name: constants.RoleAdmin, Description: "Full access to every operation"},
	{Name: constants.RoleStaff, Description: "Front-desk staff running day-to-day operations"},
	{Name: constants.RoleTailor, Description: "Tailor working on garments"},
	{Name: constants.RoleDelivery, Description: "Delivery personnel"},
	{Name: constants.RoleDesigner, Description: "Designer consulting on garments"},
	{Name: constants.RoleCustomer, Description: "Customer self-service account"},
}

var paymentModesData = []struct {
	Code string
	Name string
}{
	{Code: "cash", Name: "Cash"},
	{Code: "card", Name: "Card"},
	{Code: "upi", Name: "UPI"},
}

var garmentTypesData = []struct {
	Name          string
	Description   string
	BasePrice     string
	EstimatedDays int
}{
	{Name: "Shirt", Description: "Formal or casual shirt", BasePrice: "800.00", EstimatedDays: 5},
	{Name: "Trousers", Description: "Formal trousers", BasePrice: "900.00", EstimatedDays: 5},
	{Name: "Suit (2 piece)", Description: "Jacket and trousers", BasePrice: "6500.00", EstimatedDays: 14},
	{Name: "Sherwani", Description: "Ceremonial sherwani", BasePrice: "8000.00", EstimatedDays: 21},
	{Name: "Blouse", Description: "Saree blouse", BasePrice: "600.00", EstimatedDays: 4},
	{Name: "Kurta", Description: "Kurta with standard fit", BasePrice: "700.00", EstimatedDays: 5},
}

var workTypesData = []struct {
	Name        string
	Description string
	ExtraCharge string
}{
	{Name: "Embroidery", Description: "Hand embroidery work", ExtraCharge: "500.00"},
	{Name: "Lining", Description: "Full inner lining", ExtraCharge: "300.00"},
	{Name: "Monogram", Description: "Initials stitched on cuff or pocket", ExtraCharge: "150.00"},
	{Name: "Piping", Description: "Contrast piping on edges", ExtraCharge: "200.00"},
	{Name: "Button upgrade", Description: "Premium buttons", ExtraCharge: "120.00"},
}
