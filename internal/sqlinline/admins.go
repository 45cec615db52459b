package sqlinline

const QSelectAdminByCredentials = `--sql 6f3b9d8a-0c5e-47f1-a2b4-7d1e8c5a0f96
select id, username
from admin_users
where username = ? and password = ?;
`
