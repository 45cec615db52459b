package sqlinline

const QInsertContactMessage = `--sql 9d2e6b1f-4a7c-438e-b0d5-3c8f1a6e7d24
insert into contact_messages (name, email, message)
values (?, ?, ?);
`

const QListContactMessages = `--sql 1a5c8e3d-7f2b-46a9-8e1c-4b9d0a2f6c73
select id, name, email, message, date_added
from contact_messages
order by date_added desc, id desc;
`
