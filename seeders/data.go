package seeders

import (
	"github.com/aarondl/null/v8"

	"storage-equipment/internal/dto"
	"storage-equipment/internal/forms"
)

var sampleEquipment = []forms.EquipmentFormData{
	{
		Name: "Medical Refrigerator", SerialNumber: "MR-2023-0141", Manufacturer: "Helmer",
		Model: "HLR-125", InstallationDate: "2023-02-14", Location: "Pharmacy, Level 1",
		ServiceInterval: null.IntFrom(180), LastService: "2024-08-20", LifeExpectancy: null.IntFrom(12),
		Status: dto.EquipmentOperational, Notes: "Vaccine storage, temperature logged hourly",
	},
	{
		Name: "Blood Bank Freezer", SerialNumber: "BBF-7781", Manufacturer: "Thermo Fisher",
		Model: "TSX-600", InstallationDate: "2021-06-01", Location: "Blood Bank",
		ServiceInterval: null.IntFrom(90), LastService: "2024-11-05", LifeExpectancy: null.IntFrom(10),
		Status: dto.EquipmentOperational,
	},
	{
		Name: "Sterile Supply Cabinet", SerialNumber: "SSC_0092", Manufacturer: "Metro",
		InstallationDate: "2019-09-23", Location: "Central Sterile Services",
		ServiceInterval: null.IntFrom(365), LastService: "2024-01-15", LifeExpectancy: null.IntFrom(20),
		Status: dto.EquipmentInRepair, Notes: "Door seal replacement ordered",
	},
	{
		Name: "Mobile Shelving Unit", SerialNumber: "MSU-3310", Manufacturer: "Spacesaver",
		Model: "XTend", InstallationDate: "2016-03-07", Location: "Medical Records Archive",
		ServiceInterval: null.IntFrom(365), LifeExpectancy: null.IntFrom(25),
		Status: dto.EquipmentOperational,
	},
	{
		Name: "Ultra-Low Freezer", SerialNumber: "ULF-2020-08", Manufacturer: "PHC",
		Model: "MDF-DU702", InstallationDate: "2020-10-12", Location: "Research Laboratory",
		ServiceInterval: null.IntFrom(120), LastService: "2024-05-30", LifeExpectancy: null.IntFrom(10),
		Status: dto.EquipmentFaulty, Notes: "Compressor alarm, awaiting technician",
	},
	{
		Name: "Linen Storage Rack", SerialNumber: "LSR-0007", Manufacturer: "Cambro",
		InstallationDate: "2010-04-19", Location: "Ward 3 Storage",
		LifeExpectancy: null.IntFrom(15),
		Status:         dto.EquipmentDecommissioned,
	},
}

func item(name string, quantity int, price float64) forms.OrderItemData {
	unit := dto.NewMoney(price)
	return forms.OrderItemData{EquipmentName: name, Quantity: quantity, UnitPrice: unit, TotalPrice: unit.Times(quantity)}
}

var sampleOrders = []forms.OrderFormData{
	{
		RequestedBy: "Dr. Sarah Chen", RequestorDepartment: "Pharmacy", Status: dto.OrderPending,
		Notes: "Replacement probes for vaccine fridges",
		Items: []forms.OrderItemData{
			item("Temperature Probe", 4, 38.5),
			item("Data Logger", 2, 129.99),
		},
	},
	{
		RequestedBy: "Mark Okafor", RequestorDepartment: "Central Sterile Services", Status: dto.OrderDelivered,
		Items: []forms.OrderItemData{
			item("Cabinet Door Seal", 3, 54),
		},
	},
	{
		RequestedBy: "Linda Alvarez", RequestorDepartment: "Research Laboratory", Status: dto.OrderPending,
		Notes: "Urgent: compressor failure on ULF-2020-08",
		Items: []forms.OrderItemData{
			item("Freezer Rack", 6, 72.25),
			item("Cryo Box", 50, 3.1),
		},
	},
	{
		RequestedBy: "Tom Reyes", RequestorDepartment: "Ward 3", Status: dto.OrderCancelled,
		Items: []forms.OrderItemData{
			item("Wire Shelf", 8, 19.95),
		},
	},
}
