package converter

import (
	"fmt"
	"strconv"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"
)

// QueueTicketToRecord converts a QueueTicket entity to a queue_ticket.csv row.
// The ticket id is left to the database sequence.
func QueueTicketToRecord(ticket *entity.QueueTicket) []string {
	return []string{
		ticket.AppointmentID,
		string(ticket.Status),
		FormatDateTime(ticket.CheckInTime),
		strconv.Itoa(ticket.QueueNumber),
		FormatBool(ticket.IsFastTracked),
	}
}

// QueueTicketsToRecords converts a slice of QueueTicket entities to queue_ticket.csv rows
func QueueTicketsToRecords(tickets []entity.QueueTicket) [][]string {
	records := make([][]string, len(tickets))
	for i := range tickets {
		records[i] = QueueTicketToRecord(&tickets[i])
	}
	return records
}

func RecordToQueueTicket(record map[string]string) (*entity.QueueTicket, error) {
	var (
		ticket entity.QueueTicket
		err    error
	)
	if ticket.AppointmentID, err = field(record, ColumnAppointmentID); err != nil {
		return nil, err
	}
	status, err := field(record, ColumnStatus)
	if err != nil {
		return nil, err
	}
	ticket.Status = entity.QueueStatus(status)
	if ticket.CheckInTime, err = dateTimeField(record, ColumnCheckInTime); err != nil {
		return nil, err
	}
	if ticket.QueueNumber, err = intField(record, ColumnQueueNumber); err != nil {
		return nil, err
	}

	rawFastTracked, err := field(record, ColumnIsFastTracked)
	if err != nil {
		return nil, err
	}
	if rawFastTracked != "" {
		if ticket.IsFastTracked, err = strconv.ParseBool(rawFastTracked); err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidValue, ColumnIsFastTracked, rawFastTracked)
		}
	}
	return &ticket, nil
}
