// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing time series data,
// along with functions for data loading and transformation. A NaN value in
// a Series marks a missing observation; downstream transforms decide how
// missingness propagates.
//
// # Creating a Series
//
// Create a time series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// # Loading from CSV
//
// Load time series data from CSV files:
//
//	// Load a specific column
//	series, err := timeseries.LoadCSVColumn("data.csv", "close")
//
//	// Customize loading
//	opts := &timeseries.CSVOptions{
//	    DateColumn:  "date",
//	    ValueColumn: "close",
//	    DateFormat:  "2006-01-02",
//	    HasHeader:   true,
//	}
//	series, err := timeseries.LoadCSVFromReader(reader, opts)
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	std := series.Std()
//	median := series.Median()
//	missing := series.MissingCount()
//
// # Transformations
//
// Transform the time series:
//
//	diff := series.Diff()    // First difference
//	logged := series.Log()   // Natural log
//	subset := series.Slice(10, 50)
//	lagged := series.Lag(1)
package timeseries
