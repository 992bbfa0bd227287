package flights

import "github.com/Domenick1991/kiosk/internal/domain"

func Airports() []domain.Airport {
	return []domain.Airport{
		{Code: "JNB", City: "Johannesburg", Name: "O.R. Tambo International"},
		{Code: "CPT", City: "Cape Town", Name: "Cape Town International"},
		{Code: "DUR", City: "Durban", Name: "King Shaka International"},
		{Code: "MQP", City: "Mbombela", Name: "Kruger Mpumalanga International"},
		{Code: "HDS", City: "Hoedspruit", Name: "Hoedspruit Eastgate"},
		{Code: "PLZ", City: "Gqeberha", Name: "Chief Dawid Stuurman International"},
		{Code: "BFN", City: "Bloemfontein", Name: "Bram Fischer International"},
	}
}

func Airlines() []string {
	return []string{"South African Airways", "Airlink", "FlySafair", "CemAir"}
}

// Flights is the static timetable served to the kiosk.
func Flights() []domain.Flight {
	return []domain.Flight{
		{ID: "1", Airline: "Airlink", FlightNumber: "4Z 101", OriginCode: "JNB", OriginName: "Johannesburg", DestinationCode: "MQP", DestinationName: "Mbombela", DepartureTime: "06:30", Duration: "55m", Status: domain.FlightStatusOnTime, PriceRand: 2150},
		{ID: "2", Airline: "South African Airways", FlightNumber: "SA 1281", OriginCode: "JNB", OriginName: "Johannesburg", DestinationCode: "MQP", DestinationName: "Mbombela", DepartureTime: "09:15", Duration: "50m", Status: domain.FlightStatusBoarding, PriceRand: 2480},
		{ID: "3", Airline: "FlySafair", FlightNumber: "FA 630", OriginCode: "CPT", OriginName: "Cape Town", DestinationCode: "MQP", DestinationName: "Mbombela", DepartureTime: "07:40", Duration: "2h 35m", Status: domain.FlightStatusDelayed, PriceRand: 3290},
		{ID: "4", Airline: "Airlink", FlightNumber: "4Z 843", OriginCode: "CPT", OriginName: "Cape Town", DestinationCode: "MQP", DestinationName: "Mbombela", DepartureTime: "12:05", Duration: "2h 40m", Status: domain.FlightStatusOnTime, PriceRand: 3650},
		{ID: "5", Airline: "Airlink", FlightNumber: "4Z 227", OriginCode: "DUR", OriginName: "Durban", DestinationCode: "MQP", DestinationName: "Mbombela", DepartureTime: "10:20", Duration: "1h 20m", Status: domain.FlightStatusOnTime, PriceRand: 2790},
		{ID: "6", Airline: "CemAir", FlightNumber: "5Z 711", OriginCode: "JNB", OriginName: "Johannesburg", DestinationCode: "HDS", DestinationName: "Hoedspruit", DepartureTime: "11:00", Duration: "1h 05m", Status: domain.FlightStatusCancelled, PriceRand: 2950},
		{ID: "7", Airline: "Airlink", FlightNumber: "4Z 191", OriginCode: "JNB", OriginName: "Johannesburg", DestinationCode: "HDS", DestinationName: "Hoedspruit", DepartureTime: "14:30", Duration: "1h 00m", Status: domain.FlightStatusOnTime, PriceRand: 3100},
		{ID: "8", Airline: "Airlink", FlightNumber: "4Z 102", OriginCode: "MQP", OriginName: "Mbombela", DestinationCode: "JNB", DestinationName: "Johannesburg", DepartureTime: "08:00", Duration: "55m", Status: domain.FlightStatusOnTime, PriceRand: 2150},
		{ID: "9", Airline: "FlySafair", FlightNumber: "FA 631", OriginCode: "MQP", OriginName: "Mbombela", DestinationCode: "CPT", DestinationName: "Cape Town", DepartureTime: "11:10", Duration: "2h 45m", Status: "Scheduled", PriceRand: 3290},
		{ID: "10", Airline: "South African Airways", FlightNumber: "SA 1283", OriginCode: "JNB", OriginName: "Johannesburg", DestinationCode: "MQP", DestinationName: "Mbombela", DepartureTime: "17:45", Duration: "50m", Status: domain.FlightStatusOnTime, PriceRand: 2380},
		{ID: "11", Airline: "CemAir", FlightNumber: "5Z 402", OriginCode: "PLZ", OriginName: "Gqeberha", DestinationCode: "JNB", DestinationName: "Johannesburg", DepartureTime: "06:50", Duration: "1h 40m", Status: domain.FlightStatusOnTime, PriceRand: 1890},
		{ID: "12", Airline: "FlySafair", FlightNumber: "FA 211", OriginCode: "BFN", OriginName: "Bloemfontein", DestinationCode: "CPT", DestinationName: "Cape Town", DepartureTime: "13:25", Duration: "1h 35m", Status: domain.FlightStatusDelayed, PriceRand: 1750},
	}
}
