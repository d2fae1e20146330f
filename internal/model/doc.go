package model

// Package model defines domain data structures used across the app: laundry
// loads, status enums, and the elapsed-time math every countdown derives
// from. Structures are designed for direct binding in the UI and explicit
// state transitions.
